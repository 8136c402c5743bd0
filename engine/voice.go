// SPDX-License-Identifier: EPL-2.0

package engine

// Voice is the per-trigger playback cursor over a fully decoded mono sample
// buffer. The mixing engine owns every voice it holds; nothing else keeps a
// reference after installation.
type Voice struct {
	samples  []float32
	position int
	volume   float32
	playing  bool
}

// NewVoice wraps samples in a voice starting at the beginning. volume is
// taken as-is; the caller decides whether to clamp.
func NewVoice(samples []float32, volume float32) *Voice {
	return &Voice{
		samples: samples,
		volume:  volume,
		playing: true,
	}
}

// NextSample returns the current sample scaled by the voice volume and
// advances the cursor. A stopped or exhausted voice contributes silence.
func (v *Voice) NextSample() float32 {
	if !v.playing || v.position >= len(v.samples) {
		return 0
	}

	s := v.samples[v.position] * v.volume
	v.position++
	return s
}

// Finished reports whether the cursor has reached the end of the buffer.
func (v *Voice) Finished() bool {
	return v.position >= len(v.samples)
}

// Stop silences the voice permanently; the cursor is left where it is.
func (v *Voice) Stop() {
	v.playing = false
}

// Len returns the total sample count of the underlying buffer.
func (v *Voice) Len() int {
	return len(v.samples)
}
