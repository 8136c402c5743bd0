// SPDX-License-Identifier: EPL-2.0

// Package config loads sampler configuration from file, environment and
// defaults via viper.
package config

import (
	"log/slog"

	"github.com/spf13/viper"
)

// Config holds all configuration for the sampler process.
type Config struct {
	Audio    AudioConfig    `mapstructure:"audio"`
	Waveform WaveformConfig `mapstructure:"waveform"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// AudioConfig holds output-device configuration.
type AudioConfig struct {
	SampleRate int `mapstructure:"sample_rate"`
	Channels   int `mapstructure:"channels"`
}

// WaveformConfig holds waveform-summary configuration.
type WaveformConfig struct {
	Columns int `mapstructure:"columns"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// Load reads configuration from file and environment variables. A missing
// config file is not an error; defaults and PADCORE_* environment
// variables apply.
func Load() (*Config, error) {
	viper.SetDefault("audio.sample_rate", 44100)
	viper.SetDefault("audio.channels", 2)
	viper.SetDefault("waveform.columns", 200)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.padcore")
	viper.AddConfigPath("/etc/padcore")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PADCORE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		slog.Debug("No config file found, using defaults and environment variables")
	} else {
		slog.Info("Using config file", slog.String("file", viper.ConfigFileUsed()))
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the configuration for values the core cannot work with.
func (c *Config) Validate() error {
	if c.Audio.SampleRate <= 0 {
		return &Error{Field: "audio.sample_rate", Message: "sample rate must be positive"}
	}
	if c.Audio.Channels <= 0 {
		return &Error{Field: "audio.channels", Message: "channel count must be positive"}
	}
	if c.Waveform.Columns <= 0 {
		return &Error{Field: "waveform.columns", Message: "waveform columns must be positive"}
	}
	return nil
}

// Error represents a configuration validation error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Field + ": " + e.Message
}
