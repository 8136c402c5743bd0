package engine

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/gen2brain/malgo"
)

// MalgoOutput drives the default playback device through miniaudio. The
// device invokes the render callback on its own audio thread; samples are
// rendered as float32 and packed little-endian into the device buffer.
type MalgoOutput struct {
	ctx      *malgo.AllocatedContext
	rate     int
	channels int

	mu      sync.Mutex
	device  *malgo.Device
	render  func([]float32)
	mixBuf  []float32
	running bool
	closed  bool
}

// OpenDefaultOutput acquires the system playback backend. Failure here means
// no audio output is possible at all; callers should treat it as fatal.
func OpenDefaultOutput(sampleRate, channels int) (*MalgoOutput, error) {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	if channels <= 0 {
		channels = 2
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrDeviceUnavailable)
	}

	return &MalgoOutput{
		ctx:      ctx,
		rate:     sampleRate,
		channels: channels,
	}, nil
}

func (o *MalgoOutput) SampleRate() int { return o.rate }
func (o *MalgoOutput) Channels() int   { return o.channels }

// Start opens the playback device and begins pulling frames through render.
func (o *MalgoOutput) Start(render func(dst []float32)) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrOutputClosed
	}
	if o.running {
		return nil
	}

	o.render = render

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatF32
	cfg.Playback.Channels = uint32(o.channels)
	cfg.SampleRate = uint32(o.rate)
	cfg.Alsa.NoMMap = 1

	callbacks := malgo.DeviceCallbacks{
		Data: o.onFrames,
	}

	device, err := malgo.InitDevice(o.ctx.Context, cfg, callbacks)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrDeviceUnavailable)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		return fmt.Errorf("%v: %w", err, ErrDeviceUnavailable)
	}

	o.device = device
	o.running = true

	return nil
}

// onFrames is the miniaudio data proc. It renders float32 frames and packs
// them into the device's byte buffer. The mix buffer is reused between
// callbacks; it only grows on the first call or a buffer-size change.
func (o *MalgoOutput) onFrames(pOutput, pInput []byte, frameCount uint32) {
	needed := int(frameCount) * o.channels
	if cap(o.mixBuf) < needed {
		o.mixBuf = make([]float32, needed)
	}
	o.mixBuf = o.mixBuf[:needed]

	o.render(o.mixBuf)

	for i, s := range o.mixBuf {
		binary.LittleEndian.PutUint32(pOutput[i*4:i*4+4], math.Float32bits(s))
	}
}

// Close stops the device and tears down the backend context.
func (o *MalgoOutput) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true
	o.running = false

	if o.device != nil {
		o.device.Uninit()
		o.device = nil
	}

	if o.ctx != nil {
		if err := o.ctx.Uninit(); err != nil {
			o.ctx.Free()
			return fmt.Errorf("%w", err)
		}
		o.ctx.Free()
	}

	return nil
}
