package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opensampler/padcore"
	"github.com/opensampler/padcore/config"
	"github.com/opensampler/padcore/event"
	"github.com/opensampler/padcore/logger"
)

// eventFlushInterval paces the stdout event drain; roughly one UI frame.
const eventFlushInterval = 16 * time.Millisecond

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "padcore",
	Short: "Drum-pad sampler playback core",
	Long: `Padcore is the playback core of a drum-pad sampler, run as a standalone
process. It reads one JSON command envelope per line on stdin (Play, Stop,
Load, SetMasterVolume), mixes the triggered pads into the default playback
device, and writes one JSON event envelope per line on stdout.`,
	RunE: runServe,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().IntP("sample-rate", "r", 44100, "output sample rate in Hz")
	rootCmd.Flags().IntP("channels", "c", 2, "output channel count")
	rootCmd.Flags().Int("columns", 200, "waveform summary width")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-format", "text", "log format (text, json)")

	viper.BindPFlag("audio.sample_rate", rootCmd.Flags().Lookup("sample-rate"))
	viper.BindPFlag("audio.channels", rootCmd.Flags().Lookup("channels"))
	viper.BindPFlag("waveform.columns", rootCmd.Flags().Lookup("columns"))
	viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("logging.format", rootCmd.Flags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if verbose {
		viper.Set("logging.level", "debug")
	}
}

// runServe drives the command/event loop until stdin closes or a signal
// arrives.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := logger.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	core, err := padcore.New(padcore.Options{
		SampleRate: cfg.Audio.SampleRate,
		Channels:   cfg.Audio.Channels,
		Columns:    cfg.Waveform.Columns,
	})
	if err != nil {
		return err
	}

	slog.Info("padcore ready",
		slog.Int("sample_rate", cfg.Audio.SampleRate),
		slog.Int("channels", cfg.Audio.Channels))

	lines := readLines(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	ticker := time.NewTicker(eventFlushInterval)
	defer ticker.Stop()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	shutdown := func() error {
		// Close waits for in-flight loads, so their events are still
		// flushed below.
		err := core.Close()
		flushEvents(core, out)
		return err
	}

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				slog.Info("stdin closed, shutting down")
				return shutdown()
			}
			core.HandleCommand(line)
		case <-ticker.C:
			flushEvents(core, out)
		case sig := <-signalChan:
			slog.Info("received signal, shutting down", slog.String("signal", sig.String()))
			return shutdown()
		}
	}
}

// readLines pumps non-empty stdin lines into a channel, closed on EOF.
func readLines(r *os.File) <-chan []byte {
	lines := make(chan []byte)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for scanner.Scan() {
			raw := scanner.Bytes()
			if len(raw) == 0 {
				continue
			}
			line := make([]byte, len(raw))
			copy(line, raw)
			lines <- line
		}

		if err := scanner.Err(); err != nil {
			slog.Error("reading stdin", slog.Any("err", err))
		}
	}()

	return lines
}

// flushEvents drains pending events to stdout, one envelope per line.
func flushEvents(core *padcore.Core, w *bufio.Writer) {
	events := core.Poll()
	if len(events) == 0 {
		return
	}

	for _, ev := range events {
		raw, err := event.Marshal(ev)
		if err != nil {
			slog.Warn("dropping event", slog.String("event", ev.Name()), slog.Any("err", err))
			continue
		}
		w.Write(raw)
		w.WriteByte('\n')
	}

	if err := w.Flush(); err != nil {
		slog.Error("writing events", slog.Any("err", err))
	}
}
