// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides playback and decode stand-ins for tests that
// exercise the full command-to-mix path without real hardware or fixture
// codecs.
package audiotest

import (
	"io"
	"math"

	"github.com/opensampler/padcore/audio"
)

// Output is a playback device stand-in implementing engine.Output. Tests
// pump it manually with RenderFrames instead of waiting on a device
// callback.
type Output struct {
	Rate  int
	Chans int

	render  func([]float32)
	started bool
	closed  bool
}

func NewOutput(rate, channels int) *Output {
	return &Output{Rate: rate, Chans: channels}
}

func (o *Output) SampleRate() int { return o.Rate }
func (o *Output) Channels() int   { return o.Chans }

func (o *Output) Start(render func(dst []float32)) error {
	o.render = render
	o.started = true
	return nil
}

func (o *Output) Started() bool { return o.started }

func (o *Output) Close() error {
	o.closed = true
	return nil
}

func (o *Output) Closed() bool { return o.closed }

// RenderFrames invokes the registered callback for the given number of
// interleaved frames, as the device would, and returns the rendered buffer.
func (o *Output) RenderFrames(frames int) []float32 {
	dst := make([]float32, frames*o.Chans)
	if o.render != nil {
		o.render(dst)
	}
	return dst
}

// Source generates deterministic PCM and implements audio.Source. frames is
// the per-channel length; gen maps (frame, channel) to a sample value.
type Source struct {
	rate     int
	channels int
	frames   int
	read     int
	gen      func(frame, channel int) float32
}

func NewSource(rate, channels, frames int, gen func(frame, channel int) float32) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, gen: gen}
}

// Constant returns a generator producing value on every channel.
func Constant(value float32) func(int, int) float32 {
	return func(int, int) float32 { return value }
}

// Sine returns a generator producing a sine wave of the given frequency.
func Sine(frequency float64, rate int) func(int, int) float32 {
	return func(frame, _ int) float32 {
		t := float64(frame) / float64(rate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	}
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return 4096 }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.read >= s.frames {
		return 0, io.EOF
	}

	frames := len(dst) / s.channels
	if left := s.frames - s.read; frames > left {
		frames = left
	}

	for f := 0; f < frames; f++ {
		for ch := 0; ch < s.channels; ch++ {
			dst[f*s.channels+ch] = s.gen(s.read+f, ch)
		}
	}
	s.read += frames

	n := frames * s.channels
	if s.read >= s.frames {
		return n, io.EOF
	}
	return n, nil
}

// Decoder serves a freshly generated Source for every Decode call,
// ignoring the reader contents. Registering it lets command-path tests run
// against arbitrary extensions without fixture files.
type Decoder struct {
	Rate     int
	Channels int
	Frames   int
	Gen      func(frame, channel int) float32
}

func (d Decoder) Decode(r io.Reader) (audio.Source, error) {
	// Drain the reader so file handles behave as with a real codec.
	if r != nil {
		_, _ = io.Copy(io.Discard, r)
	}

	gen := d.Gen
	if gen == nil {
		gen = Constant(0)
	}

	return NewSource(d.Rate, d.Channels, d.Frames, gen), nil
}

var _ audio.Decoder = Decoder{}
