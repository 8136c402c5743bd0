// SPDX-License-Identifier: EPL-2.0

package command

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/opensampler/padcore/audio"
	"github.com/opensampler/padcore/engine"
	"github.com/opensampler/padcore/event"
	"github.com/opensampler/padcore/waveform"
)

const decodeBufferSize = 4096

// Processor validates inbound commands and dispatches them to the mixing
// engine or to background decode workers.
//
// Play, Stop and SetMasterVolume run synchronously: Play in particular
// finishes its file decode before the engine call proceeds. Load is
// dispatched to a fire-and-forget worker per command, because decode plus
// peak extraction is unbounded-latency work that must never stall the
// command path. Workers are never cancelled; a Stop does not abort an
// in-flight Load for the same pad.
type Processor struct {
	engine   *engine.Engine
	registry *audio.Registry
	emitter  *event.Emitter
	columns  int

	wg  sync.WaitGroup
	log *slog.Logger
}

// NewProcessor wires a processor. columns is the waveform display width;
// 0 selects waveform.DefaultColumns.
func NewProcessor(eng *engine.Engine, reg *audio.Registry, em *event.Emitter, columns int, log *slog.Logger) *Processor {
	if columns <= 0 {
		columns = waveform.DefaultColumns
	}
	if log == nil {
		log = slog.Default()
	}

	return &Processor{
		engine:   eng,
		registry: reg,
		emitter:  em,
		columns:  columns,
		log:      log.With("component", "command"),
	}
}

// HandleRaw decodes one wire envelope and dispatches it. Malformed or
// unknown commands are ignored with a diagnostic; they never crash the
// process or touch engine state.
func (p *Processor) HandleRaw(data []byte) {
	cmd, err := Unmarshal(data)
	if err != nil {
		p.log.Warn("ignoring command", "err", err)
		return
	}

	if err := p.Handle(cmd); err != nil {
		p.log.Warn("command failed", "command", cmd.Name(), "err", err)
	}
}

// Handle dispatches a decoded command.
func (p *Processor) Handle(cmd Command) error {
	switch c := cmd.(type) {
	case Play:
		return p.play(c)
	case Stop:
		p.engine.Stop(c.PadID)
		return nil
	case SetMasterVolume:
		p.engine.SetMasterVolume(c.Volume)
		return nil
	case Load:
		p.wg.Add(1)
		go p.load(c)
		return nil
	default:
		return fmt.Errorf("%T: %w", cmd, ErrUnknownCommand)
	}
}

func (p *Processor) play(c Play) error {
	if _, err := os.Stat(c.FilePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Recoverable: the trigger is dropped, the voice table is
			// left untouched
			p.log.Warn("file not found", "path", c.FilePath)
			return nil
		}
		return fmt.Errorf("%w", err)
	}

	samples, _, err := p.decodeFile(c.FilePath, p.engine.SampleRate())
	if err != nil {
		return fmt.Errorf("decoding %s: %w", c.FilePath, err)
	}

	// c.Pan is accepted but not forwarded: the mix is mono
	return p.engine.Play(c.PadID, samples, c.Volume)
}

// load runs on its own worker goroutine. Failures are swallowed by design:
// no event is emitted and the front end keeps whatever waveform it had.
func (p *Processor) load(c Load) {
	defer p.wg.Done()

	samples, srcRate, err := p.decodeFile(c.FilePath, 0)
	if err != nil {
		p.log.Debug("load failed", "pad", c.PadID, "path", c.FilePath, "err", err)
		return
	}

	sum := waveform.Summary{
		PadID:    c.PadID,
		Peaks:    waveform.Extract(samples, p.columns),
		Duration: waveform.Duration(samples, srcRate),
	}

	p.emitter.Emit(event.WaveformReady{Summary: sum})
	p.log.Debug("waveform ready", "pad", c.PadID, "peaks", len(sum.Peaks), "duration", sum.Duration)
}

// decodeFile materializes path as mono float32. targetRate 0 keeps the
// source rate (waveform display does not resample). Returns the samples and
// the source sample rate.
func (p *Processor) decodeFile(path string, targetRate int) ([]float32, int, error) {
	dec, err := p.registry.Lookup(path)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, 0, err
	}
	defer src.Close()

	samples, err := audio.ToMonoFloat32(src, targetRate, decodeBufferSize)
	if err != nil {
		return nil, 0, err
	}

	return samples, src.SampleRate(), nil
}

// Wait blocks until every in-flight Load worker has finished. Shutdown aid;
// normal operation never waits on workers.
func (p *Processor) Wait() {
	p.wg.Wait()
}
