// Package tab maps detected frequencies onto harmonica tablature: a
// frequency becomes a MIDI note number, and the note number indexes into
// an ordered symbol table for the selected key and tuning.
package tab

import (
	"errors"
	"fmt"
	"math"
)

// Errors reported at the settings boundary. An unknown key or tuning is a
// configuration error the caller can recover from; it never aborts the
// program.
var (
	ErrUnknownKey    = errors.New("tab: unknown key")
	ErrUnknownTuning = errors.New("tab: unknown tuning")
)

// midiBase is the MIDI note of the table's first symbol for a C harmonica
// (middle C, the tonic blow note).
const midiBase = 60

// noNote is a MIDI value far below any playable note, returned for
// frequencies that cannot carry a pitch. It indexes outside every symbol
// table, so it maps to the empty symbol rather than an error.
const noNote = math.MinInt32

// keys lists the supported harmonica keys in display order. LF/LC/LD are
// low-tuned, HG is high-tuned.
var keys = []string{
	"C", "G", "D", "A", "E", "B", "F#", "Db",
	"Ab", "Eb", "Bb", "F", "LF", "LC", "LD", "HG",
}

// keyOffsets maps each key to its semitone offset from C.
var keyOffsets = map[string]int{
	"C":  0,
	"G":  -5,
	"D":  2,
	"A":  -3,
	"E":  4,
	"B":  -1,
	"F#": 6,
	"Db": 1,
	"Ab": -4,
	"Eb": 3,
	"Bb": -2,
	"F":  5,
	"LF": -7,
	"LC": -12,
	"LD": -10,
	"HG": 7,
}

// Keys returns the supported key names in display order.
func Keys() []string {
	return keys
}

// KeyOffset returns the semitone offset of a harmonica key relative to C.
// Unrecognized keys yield ErrUnknownKey.
func KeyOffset(key string) (int, error) {
	offset, ok := keyOffsets[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return offset, nil
}

// FreqToMIDI converts a frequency to the nearest MIDI note number using
// the equal-tempered scale (A4 = 440 Hz = note 69). Non-positive
// frequencies return a value far outside the playable range, which every
// symbol table resolves to the empty symbol.
func FreqToMIDI(freq float64) int {
	if freq <= 0 {
		return noNote
	}
	return int(math.Round(12*math.Log2(freq/440) + 69))
}

// FreqToMIDIFloat is the continuous variant of FreqToMIDI, used for
// smooth positional mapping between note centers.
func FreqToMIDIFloat(freq float64) float64 {
	if freq <= 0 {
		return math.Inf(-1)
	}
	return 12*math.Log2(freq/440) + 69
}

// MIDIToTab resolves a MIDI note to a tab symbol for the given key, using
// the tuning's ordered symbol table. Notes outside the table yield the
// empty symbol; an unrecognized key yields ErrUnknownKey.
func MIDIToTab(midi int, key string, notesInOrder []string) (string, error) {
	offset, err := KeyOffset(key)
	if err != nil {
		return "", err
	}
	index := midi - midiBase - offset
	if index < 0 || index >= len(notesInOrder) {
		return "", nil
	}
	return notesInOrder[index], nil
}

// MidiBounds is the MIDI range considered on screen. It only normalizes
// the trail's horizontal position; notes outside it are still mapped.
type MidiBounds struct {
	Low  uint8
	High uint8
}

// DefaultBounds returns the fixed range used when bounds are not derived
// from the key.
func DefaultBounds() MidiBounds {
	return MidiBounds{Low: 48, High: 103}
}

// BoundsForKey returns the three-octave range starting at the key's tonic
// (C4 through C7 transposed by the key offset).
func BoundsForKey(key string) (MidiBounds, error) {
	const (
		c4 = 60
		c7 = 96
	)
	offset, err := KeyOffset(key)
	if err != nil {
		return MidiBounds{}, err
	}
	return MidiBounds{
		Low:  uint8(c4 + offset),
		High: uint8(c7 + offset),
	}, nil
}
