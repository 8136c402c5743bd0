// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio processing primitives of the
// sampler core.
//
// This package contains the building blocks that sit between a format
// decoder and the mixing engine:
//   - Source interface for audio input
//   - Registry for decoder registration by file extension
//   - MonoMixer for channel downmixing
//   - ResampleNearest for sample rate conversion
//   - ToMonoFloat32 for materializing a whole stream
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface, allowing them to be chained
// into processing pipelines.
//
// # Downmixing
//
// The MonoMixer converts multi-channel audio to mono by averaging:
//
//	mono := audio.NewMonoMixer(source)
//	buf := make([]float32, 4096)
//	n, err := mono.ReadSamples(buf)
//
// The mixing engine is mono-only, so every decoded stream goes through this.
//
// # Resampling
//
// ResampleNearest converts a materialized mono buffer to a new rate by
// truncating the fractional source position to the nearest earlier sample:
//
//	out := audio.ResampleNearest(samples, 48000, 44100)
//
// No interpolation and no anti-aliasing filter are applied. The sampler
// favors exact, predictable output over fidelity; do not "improve" this
// without changing the playback contract.
//
// # Materializing
//
// ToMonoFloat32 runs a Source through the whole pipeline and returns the
// complete mono buffer at the requested rate:
//
//	samples, err := audio.ToMonoFloat32(src, 44100, 4096)
//
// The result is safe to hand to the real-time mixer, which must never block
// on decoding.
//
// # Format Registry
//
// The registry maps file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, err := registry.Lookup("/path/to/kick.wav")
//
// Lookup returns ErrUnknownFormat for extensions nothing registered.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
package audio
