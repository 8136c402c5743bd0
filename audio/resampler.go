// SPDX-License-Identifier: EPL-2.0

package audio

// ResampleNearest converts a mono sample buffer from srcRate to dstRate by
// nearest-sample selection: for output index i the source position
// i * (srcRate / dstRate) is truncated to an integer index and copied.
// Out-of-range positions produce silence.
//
// This is deliberately lossy. There is no interpolation and no anti-aliasing
// filter; playback parity with the decimated source matters more here than
// fidelity. When srcRate == dstRate the input is returned unchanged.
func ResampleNearest(samples []float32, srcRate, dstRate int) []float32 {
	if srcRate == dstRate || srcRate <= 0 || dstRate <= 0 {
		return samples
	}

	ratio := float32(srcRate) / float32(dstRate)
	outLen := int(float32(len(samples)) / ratio)
	out := make([]float32, outLen)

	for i := range out {
		idx := int(float32(i) * ratio)
		if idx < len(samples) {
			out[i] = samples[idx]
		}
	}

	return out
}
