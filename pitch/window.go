// Package pitch turns raw samples into trusted pitch estimates: an
// accumulator batches the relay's samples into fixed-size analysis
// windows, and a McLeod-style detector extracts the fundamental frequency
// of each full window.
package pitch

// Accumulator collects samples into a fixed-size analysis window.
// Windows do not overlap: after a full window has been processed the
// accumulator is reset and starts the next window from scratch.
type Accumulator struct {
	buf  []float32
	size int
}

// NewAccumulator creates an Accumulator for windows of the given size.
func NewAccumulator(size int) *Accumulator {
	return &Accumulator{
		buf:  make([]float32, 0, size),
		size: size,
	}
}

// Add appends one sample and reports whether the window is now full.
func (a *Accumulator) Add(s float32) bool {
	a.buf = append(a.buf, s)
	return len(a.buf) == a.size
}

// Window returns the current window contents. Only valid until the next
// Add or Reset.
func (a *Accumulator) Window() []float32 {
	return a.buf
}

// Level returns the peak absolute amplitude of the current window,
// used as a line-weight hint by the renderer.
func (a *Accumulator) Level() float32 {
	var peak float32
	for _, s := range a.buf {
		if s < 0 {
			s = -s
		}
		if s > peak {
			peak = s
		}
	}
	return peak
}

// Reset clears the window, keeping its capacity.
func (a *Accumulator) Reset() {
	a.buf = a.buf[:0]
}

// Len returns the number of samples accumulated so far.
func (a *Accumulator) Len() int {
	return len(a.buf)
}

// Size returns the configured window size.
func (a *Accumulator) Size() int {
	return a.size
}
