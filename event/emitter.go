package event

import "sync"

// Emitter is a multi-producer, single-consumer FIFO for outbound events.
// Decode workers and the drop handler push from any goroutine; the UI
// boundary drains on its own polling cadence. FIFO order preserves the
// causal Load -> WaveformReady chain per pad.
type Emitter struct {
	mu    sync.Mutex
	queue []Event
}

func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit appends ev to the queue. Never blocks.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	e.queue = append(e.queue, ev)
	e.mu.Unlock()
}

// Drain returns every queued event in emission order and empties the queue.
// Returns nil when nothing is pending.
func (e *Emitter) Drain() []Event {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.queue) == 0 {
		return nil
	}

	out := e.queue
	e.queue = nil
	return out
}

// Pending reports the number of queued events.
func (e *Emitter) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}
