// SPDX-License-Identifier: EPL-2.0

package padcore

import (
	"fmt"
	"log/slog"

	"github.com/opensampler/padcore/audio"
	"github.com/opensampler/padcore/command"
	"github.com/opensampler/padcore/engine"
	"github.com/opensampler/padcore/event"
)

// Options configures a Core. The zero value opens the default playback
// device at 44.1 kHz stereo with the standard waveform width.
type Options struct {
	// SampleRate of the output device in Hz. 0 selects 44100.
	SampleRate int
	// Channels of the output device. 0 selects 2. All channels carry the
	// same mono mix.
	Channels int
	// Columns is the waveform summary width. 0 selects
	// waveform.DefaultColumns.
	Columns int
	// Logger for diagnostics. nil selects slog.Default().
	Logger *slog.Logger
	// Output overrides the playback device; used by embedders that bring
	// their own audio backend and by tests. nil opens the system default
	// device.
	Output engine.Output
}

// Core ties the engine, decoder registry, command processor and event
// emitter into one embeddable unit. A shell feeds it raw command envelopes
// and periodically drains its events; everything else is internal.
type Core struct {
	engine   *engine.Engine
	registry *audio.Registry
	emitter  *event.Emitter
	proc     *command.Processor
}

// New builds a core. When opts.Output is nil the system's default playback
// device is acquired; failure to do so is fatal, a sampler with no output
// cannot do anything useful.
func New(opts Options) (*Core, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	out := opts.Output
	if out == nil {
		var err error
		out, err = engine.OpenDefaultOutput(opts.SampleRate, opts.Channels)
		if err != nil {
			return nil, fmt.Errorf("opening playback device: %w", err)
		}
	}

	eng := engine.New(out, log)
	reg := DefaultRegistry()
	em := event.NewEmitter()

	return &Core{
		engine:   eng,
		registry: reg,
		emitter:  em,
		proc:     command.NewProcessor(eng, reg, em, opts.Columns, log),
	}, nil
}

// HandleCommand decodes and dispatches one raw command envelope. Malformed
// input is logged and dropped; the core never crashes on bad wire data.
func (c *Core) HandleCommand(raw []byte) {
	c.proc.HandleRaw(raw)
}

// Dispatch handles an already-decoded command, for embedders that bypass
// the JSON layer.
func (c *Core) Dispatch(cmd command.Command) error {
	return c.proc.Handle(cmd)
}

// DropFile records a file dropped on the shell at window coordinates
// (x, y). The core only forwards the event; pad assignment is the UI's
// decision.
func (c *Core) DropFile(path string, x, y float64) {
	c.emitter.Emit(event.FileDropped{Path: path, X: x, Y: y})
}

// Poll drains and returns all pending outbound events, oldest first.
func (c *Core) Poll() []event.Event {
	return c.emitter.Drain()
}

// Registry exposes the decoder registry so embedders can register custom
// formats.
func (c *Core) Registry() *audio.Registry {
	return c.registry
}

// Engine exposes the mixing engine for direct control and inspection.
func (c *Core) Engine() *engine.Engine {
	return c.engine
}

// Close waits for in-flight background loads, then stops the stream and
// releases the device.
func (c *Core) Close() error {
	c.proc.Wait()
	return c.engine.Close()
}
