package capture

import "testing"

func TestRelayFIFOOrder(t *testing.T) {
	r := NewRelay(8)
	for i := 0; i < 5; i++ {
		if !r.Push(float32(i)) {
			t.Fatalf("push %d failed on non-full relay", i)
		}
	}
	for i := 0; i < 5; i++ {
		s, ok := r.Pop()
		if !ok {
			t.Fatalf("pop %d failed on non-empty relay", i)
		}
		if s != float32(i) {
			t.Errorf("pop %d: got %v want %v", i, s, float32(i))
		}
	}
	if _, ok := r.Pop(); ok {
		t.Error("pop on empty relay returned ok")
	}
}

func TestRelayDropsOnFull(t *testing.T) {
	r := NewRelay(4)
	for i := 0; i < r.Cap(); i++ {
		if !r.Push(float32(i)) {
			t.Fatalf("push %d failed below capacity", i)
		}
	}
	// Pushing beyond capacity must neither block nor panic, just report a drop.
	for i := 0; i < 100; i++ {
		if r.Push(99) {
			t.Fatal("push succeeded on full relay")
		}
	}
	if got := r.Len(); got != r.Cap() {
		t.Errorf("Len after overflow: got %d want %d", got, r.Cap())
	}
	// The buffered samples are the ones pushed before saturation.
	for i := 0; i < r.Cap(); i++ {
		s, ok := r.Pop()
		if !ok || s != float32(i) {
			t.Errorf("pop %d: got %v,%v want %v,true", i, s, ok, float32(i))
		}
	}
}

func TestRelayCapacityRoundsUp(t *testing.T) {
	r := NewRelay(5)
	if r.Cap() != 8 {
		t.Errorf("Cap: got %d want 8", r.Cap())
	}
}

func TestRelayPrefill(t *testing.T) {
	r := NewRelay(16)
	r.Prefill(8)
	if got := r.Len(); got != 8 {
		t.Fatalf("Len after prefill: got %d want 8", got)
	}
	s, ok := r.Pop()
	if !ok || s != 0 {
		t.Errorf("prefilled sample: got %v,%v want 0,true", s, ok)
	}
}

func TestRelayConcurrentProducerConsumer(t *testing.T) {
	r := NewRelay(64)
	const total = 10000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < total; i++ {
			r.Push(float32(i))
		}
	}()

	// Drain concurrently; dropped samples are allowed, reordering is not.
	last := float32(-1)
	for {
		select {
		case <-done:
			for {
				s, ok := r.Pop()
				if !ok {
					if last < 0 {
						t.Fatal("consumer observed no samples")
					}
					return
				}
				if s <= last {
					t.Fatalf("out of order: %v after %v", s, last)
				}
				last = s
			}
		default:
			if s, ok := r.Pop(); ok {
				if s <= last {
					t.Fatalf("out of order: %v after %v", s, last)
				}
				last = s
			}
		}
	}
}
