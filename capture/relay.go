// Package capture provides the audio input side of the visualizer: a
// portaudio input stream feeding a lock-free relay that the update loop
// drains once per frame.
package capture

import "sync/atomic"

// Relay is a bounded single-producer/single-consumer queue of mono samples.
// The producer is the audio capture callback, which runs in a real-time
// context: Push never blocks, never allocates, and drops the sample when
// the relay is full. The consumer is the update loop, which drains with
// non-blocking Pop calls.
//
// Only one goroutine may call Push and only one may call Pop.
type Relay struct {
	buf  []float32
	mask uint64
	head atomic.Uint64 // next slot to read
	tail atomic.Uint64 // next slot to write
}

// NewRelay creates a Relay holding at least capacity samples.
// The internal buffer is rounded up to a power of two.
func NewRelay(capacity int) *Relay {
	if capacity < 1 {
		capacity = 1
	}
	n := 1
	for n < capacity {
		n <<= 1
	}
	return &Relay{
		buf:  make([]float32, n),
		mask: uint64(n - 1),
	}
}

// Push appends a sample. It returns false when the relay is full and the
// sample was dropped. Safe to call from the capture callback.
func (r *Relay) Push(s float32) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.buf)) {
		return false
	}
	r.buf[tail&r.mask] = s
	r.tail.Store(tail + 1)
	return true
}

// Pop removes and returns the oldest sample. The second return value is
// false when the relay is empty.
func (r *Relay) Pop() (float32, bool) {
	head := r.head.Load()
	if head == r.tail.Load() {
		return 0, false
	}
	s := r.buf[head&r.mask]
	r.head.Store(head + 1)
	return s, true
}

// Len returns the number of buffered samples.
func (r *Relay) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap returns the relay's capacity.
func (r *Relay) Cap() int {
	return len(r.buf)
}

// Prefill pushes n zero samples, adding a fixed latency cushion so the
// consumer stays behind the producer in steady state. Call before the
// capture stream starts.
func (r *Relay) Prefill(n int) {
	for i := 0; i < n; i++ {
		if !r.Push(0) {
			return
		}
	}
}
