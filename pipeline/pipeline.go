// Package pipeline wires the core audio-to-symbol chain: it drains the
// capture relay once per update tick, runs full windows through the pitch
// detector, maps accepted estimates to tab symbols and trail positions,
// and advances the trail and camera. It has no UI dependencies; the TUI
// calls Tick each frame and renders the Frame snapshot.
package pipeline

import (
	"log/slog"

	"github.com/Seebass22/tab-visualizer/capture"
	"github.com/Seebass22/tab-visualizer/pitch"
	"github.com/Seebass22/tab-visualizer/tab"
	"github.com/Seebass22/tab-visualizer/trail"
)

// Horizontal range the MIDI bounds are mapped onto.
const (
	lineBoundLow  = -8.0
	lineBoundHigh = 8.0
)

// Settings is the mutable configuration consumed by the pipeline.
// Thresholds are adjusted directly; key, tuning, and bounds mode go
// through the pipeline's setters so derived state stays consistent and
// invalid names are rejected without losing the previous value.
type Settings struct {
	PowerThreshold   float64 // 0-5
	ClarityThreshold float64 // 0-1
	Key              string
	Tuning           string
	LeftColor        string // hex, e.g. "#001ACC"
	RightColor       string
	BoundsFromKey    bool
}

// DefaultSettings returns the startup configuration.
func DefaultSettings() Settings {
	return Settings{
		PowerThreshold:   3.0,
		ClarityThreshold: 0.7,
		Key:              "C",
		Tuning:           "richter",
		LeftColor:        "#001ACC",
		RightColor:       "#FF1ACC",
		BoundsFromKey:    true,
	}
}

// Options configures a Pipeline.
type Options struct {
	SampleRate    int
	WindowSize    int
	TrailCapacity int
	Settings      Settings
}

// FramePoint is a projected trail point ready to draw. Mix is the
// left/right color blend factor derived from the point's world x.
type FramePoint struct {
	X, Y float64
	Mix  float64
}

// Frame is the per-tick renderer contract: projected trail points, the
// current tab symbol and where to draw it, a line weight derived from
// signal level, and whether the symbol should be drawn at all.
type Frame struct {
	Points           []FramePoint
	Symbol           string
	SymbolX, SymbolY float64
	Weight           float64
	Running          bool
}

// Pipeline owns all pipeline state downstream of the capture relay.
// It must only be used from the update goroutine.
type Pipeline struct {
	relay      *capture.Relay
	acc        *pitch.Accumulator
	det        *pitch.Detector
	trail      *trail.Trail
	cam        trail.Camera
	settings   Settings
	notes      []string
	bounds     tab.MidiBounds
	symbol     string
	level      float32
	sampleRate int
}

// New creates a Pipeline reading from the given relay. Unknown key or
// tuning names in the settings are configuration errors.
func New(relay *capture.Relay, opts Options) (*Pipeline, error) {
	notes, err := tab.NotesInOrder(opts.Settings.Tuning)
	if err != nil {
		return nil, err
	}
	bounds := tab.DefaultBounds()
	if opts.Settings.BoundsFromKey {
		bounds, err = tab.BoundsForKey(opts.Settings.Key)
	} else {
		_, err = tab.KeyOffset(opts.Settings.Key)
	}
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		relay:      relay,
		acc:        pitch.NewAccumulator(opts.WindowSize),
		det:        pitch.NewDetector(opts.WindowSize, opts.WindowSize/2),
		trail:      trail.New(opts.TrailCapacity),
		settings:   opts.Settings,
		notes:      notes,
		bounds:     bounds,
		symbol:     "4",
		sampleRate: opts.SampleRate,
	}, nil
}

// Tick drains every sample currently buffered in the relay, processing
// each full analysis window as it completes, then moves the camera onto
// the trail's working position. An empty relay is a no-op tick.
func (p *Pipeline) Tick() {
	p.trail.BeginTick()
	for {
		s, ok := p.relay.Pop()
		if !ok {
			break
		}
		if !p.acc.Add(s) {
			continue
		}
		p.processWindow()
		p.acc.Reset()
	}
	p.cam.Follow(p.trail.Position())
}

func (p *Pipeline) processWindow() {
	p.level = p.acc.Level()

	est, accepted := p.det.GetPitch(
		p.acc.Window(),
		p.sampleRate,
		p.settings.PowerThreshold,
		p.settings.ClarityThreshold,
	)
	var x float64
	if accepted {
		midi := tab.FreqToMIDI(est.Frequency)
		x = mapRange(
			tab.FreqToMIDIFloat(est.Frequency),
			float64(p.bounds.Low), float64(p.bounds.High),
			lineBoundLow, lineBoundHigh,
		)
		// Key is validated on every settings change, so this cannot fail;
		// an out-of-range note yields the empty symbol by contract.
		if sym, err := tab.MIDIToTab(midi, p.settings.Key, p.notes); err == nil {
			p.symbol = sym
		}
		slog.Debug("pitch accepted",
			"frequency", est.Frequency,
			"clarity", est.Clarity,
			"midi", midi,
			"symbol", p.symbol,
		)
	}
	p.trail.Advance(accepted, x)
}

// Frame returns the current renderer snapshot.
func (p *Pipeline) Frame() Frame {
	points := p.trail.Points()
	frame := Frame{
		Points:  make([]FramePoint, 0, len(points)),
		Symbol:  p.symbol,
		Weight:  10*float64(p.level) + 1,
		Running: p.trail.Running(),
	}
	for _, pt := range points {
		sx, sy, ok := p.cam.Project(pt)
		if !ok {
			continue
		}
		frame.Points = append(frame.Points, FramePoint{
			X:   sx,
			Y:   sy,
			Mix: mapRange(pt.X, lineBoundLow, lineBoundHigh, 0, 1),
		})
	}
	if last, ok := p.trail.Last(); ok {
		frame.SymbolX, frame.SymbolY, _ = p.cam.Project(last)
	}
	return frame
}

// Settings returns a copy of the current configuration.
func (p *Pipeline) Settings() Settings {
	return p.settings
}

// Bounds returns the active MIDI display bounds.
func (p *Pipeline) Bounds() tab.MidiBounds {
	return p.bounds
}

// SetPowerThreshold updates the power gate, clamped to [0, 5].
func (p *Pipeline) SetPowerThreshold(v float64) {
	p.settings.PowerThreshold = clamp(v, 0, 5)
}

// SetClarityThreshold updates the clarity gate, clamped to [0, 1].
func (p *Pipeline) SetClarityThreshold(v float64) {
	p.settings.ClarityThreshold = clamp(v, 0, 1)
}

// SetKey switches the harmonica key, recomputing the MIDI bounds when
// they are key-derived. An unknown key leaves all prior state intact.
func (p *Pipeline) SetKey(key string) error {
	if p.settings.BoundsFromKey {
		bounds, err := tab.BoundsForKey(key)
		if err != nil {
			return err
		}
		p.bounds = bounds
	} else if _, err := tab.KeyOffset(key); err != nil {
		return err
	}
	p.settings.Key = key
	return nil
}

// SetTuning switches the tuning's symbol table. An unknown tuning leaves
// the prior table intact.
func (p *Pipeline) SetTuning(tuning string) error {
	notes, err := tab.NotesInOrder(tuning)
	if err != nil {
		return err
	}
	p.notes = notes
	p.settings.Tuning = tuning
	return nil
}

// SetBoundsFromKey toggles between key-derived and fixed default bounds.
func (p *Pipeline) SetBoundsFromKey(enabled bool) {
	p.settings.BoundsFromKey = enabled
	if enabled {
		// The active key was validated when it was set.
		if bounds, err := tab.BoundsForKey(p.settings.Key); err == nil {
			p.bounds = bounds
		}
		return
	}
	p.bounds = tab.DefaultBounds()
}

// SetColors updates the trail gradient endpoints.
func (p *Pipeline) SetColors(left, right string) {
	p.settings.LeftColor = left
	p.settings.RightColor = right
}

// Reset clears the trail and suppresses point recording until the next
// accepted pitch.
func (p *Pipeline) Reset() {
	p.trail.Reset()
}

// mapRange linearly remaps v from [inLo, inHi] to [outLo, outHi],
// without clamping.
func mapRange(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	return outLo + (v-inLo)/(inHi-inLo)*(outHi-outLo)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
