// SPDX-License-Identifier: EPL-2.0

package waveform

// DefaultColumns is the number of display columns the UI renders per pad.
const DefaultColumns = 200

// Summary is the display-ready reduction of a decoded sample, produced once
// per Load and immutable after creation.
type Summary struct {
	PadID    uint      `json:"pad_id"`
	Peaks    []float32 `json:"peaks"`
	Duration float64   `json:"duration"`
}

// Extract reduces a mono sample buffer to exactly columns peak magnitudes.
//
// The buffer is partitioned into contiguous chunks of max(1, len/columns)
// samples; each output value is the maximum absolute amplitude within its
// chunk. When the buffer holds fewer samples than columns, the chunk size
// floors to 1 and trailing columns repeat the last in-range window, so the
// result always has the fixed display width.
func Extract(samples []float32, columns int) []float32 {
	if columns <= 0 {
		columns = DefaultColumns
	}

	peaks := make([]float32, columns)
	if len(samples) == 0 {
		return peaks
	}

	chunk := max(1, len(samples)/columns)

	for i := 0; i < columns; i++ {
		start := i * chunk
		if start >= len(samples) {
			start = len(samples) - chunk
			if start < 0 {
				start = 0
			}
		}
		end := min(start+chunk, len(samples))

		var peak float32
		for _, s := range samples[start:end] {
			if s < 0 {
				s = -s
			}
			if s > peak {
				peak = s
			}
		}
		peaks[i] = peak
	}

	return peaks
}

// Duration reports the playback length in seconds of samples at sampleRate.
func Duration(samples []float32, sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(samples)) / float64(sampleRate)
}
