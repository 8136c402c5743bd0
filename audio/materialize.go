package audio

import (
	"fmt"
	"io"
)

// ToMonoFloat32 drains src through the downmix pipeline and returns the whole
// stream as a mono float32 buffer at targetRate.
//
// The pipeline is:
//  1. Downmix to mono by channel averaging
//  2. Collect every sample into memory
//  3. Nearest-sample resample to targetRate when the rates differ
//
// A targetRate of 0 keeps the source rate. bufferSize controls the read
// granularity (4096 is a good default).
//
// The returned buffer is fully materialized, so callers can hand it to a
// real-time consumer that must not touch the decoder again.
func ToMonoFloat32(src Source, targetRate int, bufferSize int) ([]float32, error) {
	mono := NewMonoMixer(src)

	// Estimate one second of output to keep early growth cheap
	capacity := src.SampleRate()
	if capacity <= 0 {
		capacity = bufferSize
	}

	samples := make([]float32, 0, capacity)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if len(samples) == 0 {
		return nil, ErrNoAudioData
	}

	if targetRate > 0 && targetRate != src.SampleRate() {
		samples = ResampleNearest(samples, src.SampleRate(), targetRate)
	}

	return samples, nil
}
