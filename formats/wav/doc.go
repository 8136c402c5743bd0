// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and writes RIFF/WAVE files.
//
// The decoder walks the container chunk by chunk, skipping metadata chunks
// (LIST, fact, cue) until the data chunk, and streams samples as normalized
// float32 via the audio.Source interface.
//
// # Supported encodings
//
//   - PCM 16-bit signed integer (normalized by 32768)
//   - PCM 24-bit signed integer (normalized by 8388608)
//   - PCM 32-bit signed integer (normalized by 2147483648)
//   - IEEE 32-bit float (passed through unchanged)
//
// Any other format tag or bit depth fails with a sentinel error; the decoder
// never substitutes silence for a whole unsupported stream. A truncated
// trailing sample inside the data chunk, on the other hand, decodes to a
// single zero sample so one damaged frame does not lose the whole file.
//
// # Usage
//
//	f, _ := os.Open("kick.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    // not a WAV, or unsupported encoding
//	}
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Writing
//
// WriteWAV16 writes mono 16-bit PCM and WriteWAVFloat32 writes IEEE float
// data. Both produce the canonical 44-byte header layout.
package wav
