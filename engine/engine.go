// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/opensampler/padcore/utils"
)

// Engine owns the active-voice table and the live output stream. Commands
// install, replace and remove voices; the device callback sums whatever
// voices exist at the time into every output frame.
//
// The voice table and master volume are the only state shared between the
// command context and the real-time callback. A single mutex guards them:
// the command side holds it only for map updates, the callback holds it for
// the full per-buffer mix pass. Nothing under the lock performs I/O,
// decodes, allocates or logs.
type Engine struct {
	mu           sync.Mutex
	voices       map[uint]*Voice
	masterVolume float32

	startMu  sync.Mutex
	started  bool
	out      Output
	channels int

	log *slog.Logger
}

// New wires an engine to an opened output device. The stream itself starts
// lazily on the first Play.
func New(out Output, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}

	return &Engine{
		voices:       make(map[uint]*Voice),
		masterVolume: 1.0,
		out:          out,
		channels:     out.Channels(),
		log:          log.With("component", "engine"),
	}
}

// Play installs (or replaces) the voice for pad. samples must already be
// fully decoded mono at the device rate; Play never touches a file. The
// output stream is started on first use.
func (e *Engine) Play(pad uint, samples []float32, volume float32) error {
	if err := e.ensureStarted(); err != nil {
		return err
	}

	e.mu.Lock()
	e.voices[pad] = NewVoice(samples, volume)
	active := len(e.voices)
	e.mu.Unlock()

	e.log.Debug("voice installed", "pad", pad, "samples", len(samples), "active", active)

	return nil
}

// Stop silences and removes the voice for pad. Stopping a pad with no
// active voice is a no-op.
func (e *Engine) Stop(pad uint) {
	e.mu.Lock()
	if v, ok := e.voices[pad]; ok {
		v.Stop()
		delete(e.voices, pad)
	}
	e.mu.Unlock()
}

// SetMasterVolume clamps v to [0, 1] and stores it.
func (e *Engine) SetMasterVolume(v float32) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	e.mu.Lock()
	e.masterVolume = v
	e.mu.Unlock()

	e.log.Debug("master volume set", "volume", v)
}

// MasterVolume returns the current master volume.
func (e *Engine) MasterVolume() float32 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.masterVolume
}

// ActiveVoices returns the number of pads with an installed voice.
func (e *Engine) ActiveVoices() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.voices)
}

// Mix renders one device buffer of interleaved frames into dst. It runs on
// the output device's real-time thread.
//
// Per frame: sum every active voice, scale by master volume with a fixed
// 2.0 headroom boost, clamp to [-1, 1], and write the identical scalar to
// every channel. Mixing is purely additive; simultaneous pads may clip
// before the clamp, which is the intended simple-mixer behavior. Finished
// voices are swept once after the full buffer.
func (e *Engine) Mix(dst []float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	mv := e.masterVolume
	frames := len(dst) / e.channels

	for f := 0; f < frames; f++ {
		var sum float32
		for _, v := range e.voices {
			sum += v.NextSample()
		}

		s := utils.ClampUnit(sum * mv * 2.0)

		base := f * e.channels
		for c := 0; c < e.channels; c++ {
			dst[base+c] = s
		}
	}

	for pad, v := range e.voices {
		if v.Finished() {
			delete(e.voices, pad)
		}
	}
}

func (e *Engine) ensureStarted() error {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	if e.started {
		return nil
	}

	if err := e.out.Start(e.Mix); err != nil {
		return fmt.Errorf("starting output stream: %w", err)
	}

	e.started = true
	e.log.Info("output stream started", "rate", e.out.SampleRate(), "channels", e.channels)

	return nil
}

// SampleRate reports the output device rate; decoded samples must be
// materialized at this rate before Play.
func (e *Engine) SampleRate() int {
	return e.out.SampleRate()
}

// Close stops the stream and releases the device.
func (e *Engine) Close() error {
	e.startMu.Lock()
	defer e.startMu.Unlock()

	e.started = false
	if err := e.out.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
