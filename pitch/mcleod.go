package pitch

import (
	"github.com/madelynnblue/go-dsp/fft"
)

// Pitch is a single accepted pitch estimate.
type Pitch struct {
	Frequency float64 // Hz, > 0
	Clarity   float64 // 0-1, how periodic the window was
}

// Detector extracts the fundamental frequency of an analysis window using
// the McLeod Pitch Method: a normalized square difference function (NSDF)
// computed via FFT autocorrelation, key-maximum picking with parabolic
// interpolation, and power/clarity acceptance gates.
//
// No state carries across windows; the buffers are only scratch space
// reused to avoid per-window allocation.
type Detector struct {
	size    int
	padding int
	buf     []float64 // zero-padded window, len size+padding
	nsdf    []float64 // len padding
}

// NewDetector creates a Detector for windows of the given size. The
// padding bounds the maximum autocorrelation lag (lowest detectable
// frequency = sampleRate/padding).
func NewDetector(size, padding int) *Detector {
	return &Detector{
		size:    size,
		padding: padding,
		buf:     make([]float64, size+padding),
		nsdf:    make([]float64, padding),
	}
}

// GetPitch analyzes one full window. The second return value is false
// when no trustworthy pitch was found: the window's power (sum of squared
// samples) fell below powerThreshold, or no NSDF peak reached
// clarityThreshold. Rejection is the normal outcome for silence or noise.
func (d *Detector) GetPitch(window []float32, sampleRate int, powerThreshold, clarityThreshold float64) (Pitch, bool) {
	n := d.size
	if len(window) < n {
		return Pitch{}, false
	}

	clear(d.buf)
	var power float64
	for i := 0; i < n; i++ {
		v := float64(window[i])
		d.buf[i] = v
		power += v * v
	}
	if power < powerThreshold {
		return Pitch{}, false
	}

	// Autocorrelation r(tau) via FFT; the zero padding keeps lags up to
	// d.padding free of circular wraparound.
	spectrum := fft.FFTReal(d.buf)
	for i, c := range spectrum {
		re, im := real(c), imag(c)
		spectrum[i] = complex(re*re+im*im, 0)
	}
	ac := fft.IFFT(spectrum)

	// NSDF: n(tau) = 2*r(tau) / m(tau), with m(tau) the sum of squared
	// sample pairs, updated incrementally per lag.
	m := 2 * power
	for tau := 0; tau < d.padding; tau++ {
		if tau > 0 {
			head := d.buf[tau-1]
			tail := d.buf[n-tau]
			m -= head*head + tail*tail
		}
		if m > 0 {
			d.nsdf[tau] = 2 * real(ac[tau]) / m
		} else {
			d.nsdf[tau] = 0
		}
	}

	lag, clarity, ok := pickPeak(d.nsdf)
	if !ok || clarity < clarityThreshold || lag <= 0 {
		return Pitch{}, false
	}
	return Pitch{
		Frequency: float64(sampleRate) / lag,
		Clarity:   clarity,
	}, true
}

// pickPeak finds the key maxima of the NSDF (one per positive region
// after the first zero crossing) and chooses the first one within 90% of
// the highest, which favors the fundamental over its subharmonics.
func pickPeak(nsdf []float64) (lag, clarity float64, ok bool) {
	type peak struct{ lag, val float64 }
	var peaks []peak

	tau := 1
	// Skip the positive region attached to lag 0.
	for tau < len(nsdf) && nsdf[tau] > 0 {
		tau++
	}
	for tau < len(nsdf) {
		for tau < len(nsdf) && nsdf[tau] <= 0 {
			tau++
		}
		best := -1
		for ; tau < len(nsdf) && nsdf[tau] > 0; tau++ {
			if best < 0 || nsdf[tau] > nsdf[best] {
				best = tau
			}
		}
		if best > 0 {
			l, v := interpolatePeak(nsdf, best)
			peaks = append(peaks, peak{l, v})
		}
	}
	if len(peaks) == 0 {
		return 0, 0, false
	}

	var maxVal float64
	for _, p := range peaks {
		if p.val > maxVal {
			maxVal = p.val
		}
	}
	const tolerance = 0.9
	for _, p := range peaks {
		if p.val >= tolerance*maxVal {
			if p.val > 1 {
				p.val = 1
			}
			return p.lag, p.val, true
		}
	}
	return 0, 0, false
}

// interpolatePeak refines a discrete maximum with a parabola through its
// neighbors, returning the fractional lag and peak value.
func interpolatePeak(y []float64, i int) (float64, float64) {
	if i <= 0 || i >= len(y)-1 {
		return float64(i), y[i]
	}
	a, b, c := y[i-1], y[i], y[i+1]
	denom := a - 2*b + c
	if denom == 0 {
		return float64(i), b
	}
	dx := 0.5 * (a - c) / denom
	return float64(i) + dx, b - 0.25*(a-c)*dx
}
