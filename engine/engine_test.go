package engine

import (
	"errors"
	"sync"
	"testing"
)

// fakeOutput drives the engine callback by hand instead of from a device
// thread.
type fakeOutput struct {
	rate     int
	channels int
	render   func([]float32)
	started  bool
	closed   bool
	startErr error
}

func newFakeOutput(rate, channels int) *fakeOutput {
	return &fakeOutput{rate: rate, channels: channels}
}

func (f *fakeOutput) SampleRate() int { return f.rate }
func (f *fakeOutput) Channels() int   { return f.channels }
func (f *fakeOutput) Close() error    { f.closed = true; return nil }

func (f *fakeOutput) Start(render func([]float32)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.render = render
	f.started = true
	return nil
}

// renderFrames invokes the callback for one buffer of the given frame count.
func (f *fakeOutput) renderFrames(frames int) []float32 {
	buf := make([]float32, frames*f.channels)
	f.render(buf)
	return buf
}

func TestEngine_LazyStart(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 2)
	e := New(out, nil)

	if out.started {
		t.Error("output started before first Play")
	}

	if err := e.Play(0, []float32{0.1}, 1.0); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if !out.started {
		t.Error("output not started by first Play")
	}
}

func TestEngine_StartFailureSurfaces(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 2)
	out.startErr = ErrDeviceUnavailable
	e := New(out, nil)

	err := e.Play(0, []float32{0.1}, 1.0)
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("Play() error = %v, want ErrDeviceUnavailable", err)
	}
	if e.ActiveVoices() != 0 {
		t.Errorf("ActiveVoices() = %d after failed Play, want 0", e.ActiveVoices())
	}
}

func TestEngine_SingleVoiceMix(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 2)
	e := New(out, nil)

	samples := []float32{0.1, -0.2, 0.3, 0.4}
	if err := e.Play(3, samples, 0.5); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	buf := out.renderFrames(len(samples))

	// Mixed value per frame: sample * volume * master(1.0) * 2.0, clamped
	for f, s := range samples {
		want := s * 0.5 * 2.0
		if want > 1 {
			want = 1
		} else if want < -1 {
			want = -1
		}

		left := buf[f*2]
		right := buf[f*2+1]
		if left != want {
			t.Errorf("frame %d left = %v, want %v", f, left, want)
		}
		if right != left {
			t.Errorf("frame %d right = %v, want identical scalar %v", f, right, left)
		}
	}
}

func TestEngine_AdditiveMixClips(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	// Two voices at 0.8: sum 1.6, x2 gain = 3.2, clamped to 1.0
	e.Play(0, []float32{0.8}, 1.0)
	e.Play(1, []float32{0.8}, 1.0)

	buf := out.renderFrames(1)
	if buf[0] != 1.0 {
		t.Errorf("mixed sample = %v, want 1.0 (clamped)", buf[0])
	}
}

func TestEngine_VoiceLifecycle(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	samples := make([]float32, 64)
	if err := e.Play(1, samples, 1.0); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	// One buffer shorter than the voice: still active afterwards
	out.renderFrames(63)
	if e.ActiveVoices() != 1 {
		t.Fatalf("ActiveVoices() = %d mid-playback, want 1", e.ActiveVoices())
	}

	// The advance that exhausts the buffer sweeps the voice at end of pass
	out.renderFrames(1)
	if e.ActiveVoices() != 0 {
		t.Errorf("ActiveVoices() = %d after exhaustion, want 0", e.ActiveVoices())
	}
}

func TestEngine_ReplaceVoiceOnPlay(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	e.Play(5, []float32{0.1, 0.1, 0.1}, 1.0)
	e.Play(5, []float32{0.4}, 1.0)

	if e.ActiveVoices() != 1 {
		t.Fatalf("ActiveVoices() = %d, want 1", e.ActiveVoices())
	}

	// The replacement starts from its own beginning
	buf := out.renderFrames(1)
	if buf[0] != 0.8 { // 0.4 * 2.0 gain
		t.Errorf("mixed sample = %v, want 0.8 (from replacement voice)", buf[0])
	}
}

func TestEngine_StopMissingPadIsNoop(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	e.Play(1, []float32{0.5, 0.5}, 1.0)
	e.Stop(99)

	if e.ActiveVoices() != 1 {
		t.Errorf("ActiveVoices() = %d after no-op Stop, want 1", e.ActiveVoices())
	}
}

func TestEngine_StopRemovesVoice(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	e.Play(1, []float32{0.5, 0.5}, 1.0)
	e.Stop(1)

	if e.ActiveVoices() != 0 {
		t.Errorf("ActiveVoices() = %d after Stop, want 0", e.ActiveVoices())
	}

	buf := out.renderFrames(1)
	if buf[0] != 0 {
		t.Errorf("mixed sample = %v after Stop, want 0", buf[0])
	}
}

func TestEngine_SetMasterVolumeClamps(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	e.SetMasterVolume(1.5)
	if got := e.MasterVolume(); got != 1.0 {
		t.Errorf("MasterVolume() = %v after SetMasterVolume(1.5), want 1.0", got)
	}

	e.SetMasterVolume(-0.2)
	if got := e.MasterVolume(); got != 0.0 {
		t.Errorf("MasterVolume() = %v after SetMasterVolume(-0.2), want 0.0", got)
	}
}

func TestEngine_MasterVolumeScalesMix(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 1)
	e := New(out, nil)

	e.SetMasterVolume(0.25)
	e.Play(0, []float32{0.5}, 1.0)

	buf := out.renderFrames(1)
	if buf[0] != 0.25 { // 0.5 * 0.25 * 2.0
		t.Errorf("mixed sample = %v, want 0.25", buf[0])
	}
}

func TestEngine_ConcurrentCommandsWhileMixing(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 2)
	e := New(out, nil)

	samples := make([]float32, 256)
	for i := range samples {
		samples[i] = 0.1
	}

	if err := e.Play(0, samples, 1.0); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Real-time side: keep mixing buffers until the command side finishes
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
				out.renderFrames(64)
			}
		}
	}()

	// Command side: hammer pad 1 with Play/Stop pairs
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < 500; i++ {
			e.Play(1, samples, 0.8)
			e.Stop(1)
		}
	}()

	wg.Wait()

	// Pad 1 ends silent: the Stop always follows its Play
	e.mu.Lock()
	_, alive := e.voices[1]
	e.mu.Unlock()
	if alive {
		t.Error("pad 1 voice still active after final Stop")
	}
}

func TestEngine_Close(t *testing.T) {
	t.Parallel()

	out := newFakeOutput(44100, 2)
	e := New(out, nil)

	if err := e.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !out.closed {
		t.Error("output not closed")
	}
}
