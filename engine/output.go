package engine

// Output abstracts the audio output device. The device pulls samples by
// invoking the render callback from its own real-time thread at the buffer
// cadence; render fills dst with interleaved float32 frames.
type Output interface {
	// SampleRate of the opened device in Hz.
	SampleRate() int

	// Channels count of the opened device.
	Channels() int

	// Start begins playback, invoking render from the device callback.
	// Calling Start again on a running output is a no-op.
	Start(render func(dst []float32)) error

	// Close stops playback and releases the device.
	Close() error
}
