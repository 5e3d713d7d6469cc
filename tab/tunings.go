package tab

import (
	"fmt"
	"strings"
)

// tunings lists the supported tunings in display order.
var tunings = []string{
	"richter",
	"country",
	"wilde tuning",
	"wilde minor tuning",
	"melody maker",
	"natural minor",
	"harmonic minor",
	"paddy richter",
	"pentaharp",
	"powerdraw",
	"powerbender",
	"diminished",
	"easy 3rd",
}

// tuningTables holds one tab symbol per chromatic semitone, starting at
// the tonic (index 0 = MIDI 60 for a C harmonica, the "4" blow note in
// richter) and covering two octaves plus the top tonic. "_" marks a
// semitone the tuning cannot reach; it resolves to the empty symbol.
//
// Tunings whose changes sit below hole 4 (paddy richter, easy 3rd) share
// the richter table over this range.
var tuningTables = map[string]string{
	"richter":            `4 -4' -4 4o 5 -5 5o 6 -6' -6 6o -7 7 7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
	"country":            `4 -4' -4 4o 5 -5' -5 6 -6' -6 6o -7 7 7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
	"wilde tuning":       `4 -4' -4 4o 5 -5 5o 6 -6' -6 6o -7 7 -7o 8 -8' -8 8o 9 -9' -9 9o 10 -10' -10`,
	"wilde minor tuning": `4 -4' -4 5 _ -5 5o 6 -6' -6 6o -7 7 -7o 8 _ -8 8o 9 -9' -9 9o 10 -10' -10`,
	"melody maker":       `4 -4' -4 4o 5 -5' -5 6 -6' -6 6o -7 7 7o -8 8' 8 -9' -9 9 9o -10 10'' 10' 10`,
	"natural minor":      `4 -4' -4 5 5o -5 _ 6 -6 6o -7 _ 7 7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
	"harmonic minor":     `4 -4' -4 5 _ -5 5o 6 -6 _ _ -7 7 7o -8 _ 8 -9 _ 9 9o -10 _ 10' 10`,
	"paddy richter":      `4 -4' -4 4o 5 -5 5o 6 -6' -6 6o -7 7 7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
	"pentaharp":          `4 _ -4 _ 5 _ -5 6 _ -6 _ -7 7 _ -8 _ 8 _ -9 9 _ -10 _ 10' 10`,
	"powerdraw":          `4 -4' -4 4o 5 -5 5o 6 -6' -6 6o -7 7 -7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
	"powerbender":        `4 -4' -4 4o 5 -5' -5 -6' -6 6 6o -7' -7 7 -7o -8' -8 8 8o -9' -9 9 -10' -10 10`,
	"diminished":         `4 -4' -4 4o 5 -5' -5 5o 6 -6' -6 6o 7 -7' -7 7o 8 -8' -8 8o 9 -9' -9 9o 10`,
	"easy 3rd":           `4 -4' -4 4o 5 -5 5o 6 -6' -6 6o -7 7 7o -8 8' 8 -9 9' 9 9o -10 10'' 10' 10`,
}

// Tunings returns the supported tuning names in display order.
func Tunings() []string {
	return tunings
}

// NotesInOrder returns the tuning's tab symbols in ascending chromatic
// order from the tonic. Unrecognized tunings yield ErrUnknownTuning.
func NotesInOrder(tuning string) ([]string, error) {
	table, ok := tuningTables[tuning]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTuning, tuning)
	}
	fields := strings.Fields(table)
	notes := make([]string, len(fields))
	for i, f := range fields {
		if f != "_" {
			notes[i] = f
		}
	}
	return notes, nil
}
