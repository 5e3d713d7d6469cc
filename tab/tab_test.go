package tab

import (
	"errors"
	"math"
	"testing"
)

func TestFreqToMIDIReference(t *testing.T) {
	if got := FreqToMIDI(440.0); got != 69 {
		t.Errorf("FreqToMIDI(440): got %d want 69", got)
	}
	if got := FreqToMIDI(261.63); got != 60 {
		t.Errorf("FreqToMIDI(261.63): got %d want 60", got)
	}
}

func TestFreqToMIDIMonotonic(t *testing.T) {
	prev := math.MinInt32
	for f := 20.0; f < 5000; f *= 1.01 {
		midi := FreqToMIDI(f)
		if midi < prev {
			t.Fatalf("FreqToMIDI not monotonic: %d after %d at %.2f Hz", midi, prev, f)
		}
		prev = midi
	}
}

func TestFreqToMIDIInvalidFrequency(t *testing.T) {
	for _, f := range []float64{0, -1, -440} {
		midi := FreqToMIDI(f)
		sym, err := MIDIToTab(midi, "C", mustNotes(t, "richter"))
		if err != nil {
			t.Fatalf("MIDIToTab for freq %v: %v", f, err)
		}
		if sym != "" {
			t.Errorf("freq %v mapped to symbol %q, want empty", f, sym)
		}
	}
}

func TestFreqToMIDIFloatContinuity(t *testing.T) {
	if got := FreqToMIDIFloat(440.0); math.Abs(got-69) > 1e-9 {
		t.Errorf("FreqToMIDIFloat(440): got %v want 69", got)
	}
	// Halfway between A4 and A#4 in log-frequency space.
	mid := 440.0 * math.Pow(2, 0.5/12)
	if got := FreqToMIDIFloat(mid); math.Abs(got-69.5) > 1e-9 {
		t.Errorf("FreqToMIDIFloat(%v): got %v want 69.5", mid, got)
	}
}

func TestMIDIToTabTonic(t *testing.T) {
	notes := mustNotes(t, "richter")
	sym, err := MIDIToTab(60, "C", notes)
	if err != nil {
		t.Fatal(err)
	}
	if sym != "4" {
		t.Errorf("MIDI 60 in C richter: got %q want \"4\"", sym)
	}
}

func TestMIDIToTabBoundaries(t *testing.T) {
	notes := mustNotes(t, "richter")
	// index -1 and index len(notes), just outside both ends of the table.
	for _, midi := range []int{59, 60 + len(notes)} {
		sym, err := MIDIToTab(midi, "C", notes)
		if err != nil {
			t.Fatal(err)
		}
		if sym != "" {
			t.Errorf("MIDI %d: got %q want empty", midi, sym)
		}
	}
	// Last in-range entry.
	sym, err := MIDIToTab(60+len(notes)-1, "C", notes)
	if err != nil {
		t.Fatal(err)
	}
	if sym == "" {
		t.Error("last table entry resolved to empty symbol")
	}
}

func TestMIDIToTabKeyOffset(t *testing.T) {
	notes := mustNotes(t, "richter")
	// G is -5 semitones, so its tonic blow sits at MIDI 55.
	sym, err := MIDIToTab(55, "G", notes)
	if err != nil {
		t.Fatal(err)
	}
	if sym != "4" {
		t.Errorf("MIDI 55 in G richter: got %q want \"4\"", sym)
	}
}

func TestUnknownKeyIsRecoverable(t *testing.T) {
	if _, err := KeyOffset("H"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("KeyOffset(H): got %v want ErrUnknownKey", err)
	}
	if _, err := MIDIToTab(60, "X", mustNotes(t, "richter")); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("MIDIToTab with unknown key: got %v want ErrUnknownKey", err)
	}
	if _, err := BoundsForKey(""); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("BoundsForKey(\"\"): got %v want ErrUnknownKey", err)
	}
}

func TestKeyOffsets(t *testing.T) {
	cases := map[string]int{"C": 0, "G": -5, "HG": 7, "LC": -12, "F#": 6}
	for key, want := range cases {
		got, err := KeyOffset(key)
		if err != nil {
			t.Fatalf("KeyOffset(%s): %v", key, err)
		}
		if got != want {
			t.Errorf("KeyOffset(%s): got %d want %d", key, got, want)
		}
	}
	if len(Keys()) != 16 {
		t.Errorf("Keys: got %d entries want 16", len(Keys()))
	}
	for _, key := range Keys() {
		if _, err := KeyOffset(key); err != nil {
			t.Errorf("listed key %q has no offset: %v", key, err)
		}
	}
}

func TestBounds(t *testing.T) {
	if got := DefaultBounds(); got.Low != 48 || got.High != 103 {
		t.Errorf("DefaultBounds: got %+v want {48 103}", got)
	}
	b, err := BoundsForKey("G")
	if err != nil {
		t.Fatal(err)
	}
	if b.Low != 55 || b.High != 91 {
		t.Errorf("BoundsForKey(G): got %+v want {55 91}", b)
	}
}

func TestAllTuningsResolve(t *testing.T) {
	if len(Tunings()) != 13 {
		t.Fatalf("Tunings: got %d entries want 13", len(Tunings()))
	}
	for _, name := range Tunings() {
		notes, err := NotesInOrder(name)
		if err != nil {
			t.Errorf("NotesInOrder(%s): %v", name, err)
			continue
		}
		if len(notes) == 0 {
			t.Errorf("NotesInOrder(%s): empty table", name)
		}
	}
	if _, err := NotesInOrder("bebop"); !errors.Is(err, ErrUnknownTuning) {
		t.Errorf("NotesInOrder(bebop): got %v want ErrUnknownTuning", err)
	}
}

func TestTuningGapsAreEmptySymbols(t *testing.T) {
	notes := mustNotes(t, "pentaharp")
	if notes[1] != "" {
		t.Errorf("pentaharp gap: got %q want empty", notes[1])
	}
	if notes[0] != "4" {
		t.Errorf("pentaharp tonic: got %q want \"4\"", notes[0])
	}
}

func mustNotes(t *testing.T, tuning string) []string {
	t.Helper()
	notes, err := NotesInOrder(tuning)
	if err != nil {
		t.Fatal(err)
	}
	return notes
}
