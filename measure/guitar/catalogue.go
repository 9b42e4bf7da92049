package guitar

import "math"

// Note is a playable position on a standard-tuned six string guitar.
// Strings are numbered 1 (low E) to 6 (high E); frequencies are rounded to
// whole hertz.
type Note struct {
	String    int     `json:"string" yaml:"string"`
	Fret      int     `json:"fret" yaml:"fret"`
	Name      string  `json:"note" yaml:"note"`
	Frequency float64 `json:"frequency" yaml:"frequency"`
}

const (
	// Strings is the number of strings in the catalogue.
	Strings = 6
	// Frets is the number of positions per string, open string included.
	Frets = 13
)

// catalogue is ordered by string, then fret.
var catalogue = [Strings * Frets]Note{
	// low E
	{String: 1, Fret: 0, Name: "E", Frequency: 82},
	{String: 1, Fret: 1, Name: "F", Frequency: 87},
	{String: 1, Fret: 2, Name: "F#", Frequency: 93},
	{String: 1, Fret: 3, Name: "G", Frequency: 98},
	{String: 1, Fret: 4, Name: "G#", Frequency: 104},
	{String: 1, Fret: 5, Name: "A", Frequency: 110},
	{String: 1, Fret: 6, Name: "A#", Frequency: 117},
	{String: 1, Fret: 7, Name: "B", Frequency: 124},
	{String: 1, Fret: 8, Name: "C", Frequency: 131},
	{String: 1, Fret: 9, Name: "C#", Frequency: 139},
	{String: 1, Fret: 10, Name: "D", Frequency: 147},
	{String: 1, Fret: 11, Name: "D#", Frequency: 156},
	{String: 1, Fret: 12, Name: "E", Frequency: 165},
	// A
	{String: 2, Fret: 0, Name: "A", Frequency: 110},
	{String: 2, Fret: 1, Name: "A#", Frequency: 117},
	{String: 2, Fret: 2, Name: "B", Frequency: 124},
	{String: 2, Fret: 3, Name: "C", Frequency: 131},
	{String: 2, Fret: 4, Name: "C#", Frequency: 139},
	{String: 2, Fret: 5, Name: "D", Frequency: 147},
	{String: 2, Fret: 6, Name: "D#", Frequency: 156},
	{String: 2, Fret: 7, Name: "E", Frequency: 165},
	{String: 2, Fret: 8, Name: "F", Frequency: 175},
	{String: 2, Fret: 9, Name: "F#", Frequency: 185},
	{String: 2, Fret: 10, Name: "G", Frequency: 196},
	{String: 2, Fret: 11, Name: "G#", Frequency: 208},
	{String: 2, Fret: 12, Name: "A", Frequency: 220},
	// D
	{String: 3, Fret: 0, Name: "D", Frequency: 147},
	{String: 3, Fret: 1, Name: "D#", Frequency: 156},
	{String: 3, Fret: 2, Name: "E", Frequency: 165},
	{String: 3, Fret: 3, Name: "F", Frequency: 175},
	{String: 3, Fret: 4, Name: "F#", Frequency: 185},
	{String: 3, Fret: 5, Name: "G", Frequency: 196},
	{String: 3, Fret: 6, Name: "G#", Frequency: 208},
	{String: 3, Fret: 7, Name: "A", Frequency: 220},
	{String: 3, Fret: 8, Name: "A#", Frequency: 233},
	{String: 3, Fret: 9, Name: "B", Frequency: 247},
	{String: 3, Fret: 10, Name: "C", Frequency: 262},
	{String: 3, Fret: 11, Name: "C#", Frequency: 278},
	{String: 3, Fret: 12, Name: "D", Frequency: 294},
	// G
	{String: 4, Fret: 0, Name: "G", Frequency: 196},
	{String: 4, Fret: 1, Name: "G#", Frequency: 208},
	{String: 4, Fret: 2, Name: "A", Frequency: 220},
	{String: 4, Fret: 3, Name: "A#", Frequency: 233},
	{String: 4, Fret: 4, Name: "B", Frequency: 247},
	{String: 4, Fret: 5, Name: "C", Frequency: 262},
	{String: 4, Fret: 6, Name: "C#", Frequency: 278},
	{String: 4, Fret: 7, Name: "D", Frequency: 294},
	{String: 4, Fret: 8, Name: "D#", Frequency: 311},
	{String: 4, Fret: 9, Name: "E", Frequency: 330},
	{String: 4, Fret: 10, Name: "F", Frequency: 349},
	{String: 4, Fret: 11, Name: "F#", Frequency: 370},
	{String: 4, Fret: 12, Name: "G", Frequency: 392},
	// B
	{String: 5, Fret: 0, Name: "B", Frequency: 247},
	{String: 5, Fret: 1, Name: "C", Frequency: 262},
	{String: 5, Fret: 2, Name: "C#", Frequency: 278},
	{String: 5, Fret: 3, Name: "D", Frequency: 294},
	{String: 5, Fret: 4, Name: "D#", Frequency: 311},
	{String: 5, Fret: 5, Name: "E", Frequency: 330},
	{String: 5, Fret: 6, Name: "F", Frequency: 349},
	{String: 5, Fret: 7, Name: "F#", Frequency: 370},
	{String: 5, Fret: 8, Name: "G", Frequency: 392},
	{String: 5, Fret: 9, Name: "G#", Frequency: 415},
	{String: 5, Fret: 10, Name: "A", Frequency: 440},
	{String: 5, Fret: 11, Name: "A#", Frequency: 466},
	{String: 5, Fret: 12, Name: "B", Frequency: 494},
	// high E
	{String: 6, Fret: 0, Name: "E", Frequency: 330},
	{String: 6, Fret: 1, Name: "F", Frequency: 349},
	{String: 6, Fret: 2, Name: "F#", Frequency: 370},
	{String: 6, Fret: 3, Name: "G", Frequency: 392},
	{String: 6, Fret: 4, Name: "G#", Frequency: 415},
	{String: 6, Fret: 5, Name: "A", Frequency: 440},
	{String: 6, Fret: 6, Name: "A#", Frequency: 466},
	{String: 6, Fret: 7, Name: "B", Frequency: 494},
	{String: 6, Fret: 8, Name: "C", Frequency: 523},
	{String: 6, Fret: 9, Name: "C#", Frequency: 554},
	{String: 6, Fret: 10, Name: "D", Frequency: 587},
	{String: 6, Fret: 11, Name: "D#", Frequency: 622},
	{String: 6, Fret: 12, Name: "E", Frequency: 659},
}

// AllNotes returns every catalogue entry ordered by string, then fret.
// The returned slice is a copy.
func AllNotes() []Note {
	out := make([]Note, len(catalogue))
	copy(out, catalogue[:])
	return out
}

// NotesByString returns the notes of string n (1..6), or nil for any other n.
func NotesByString(n int) []Note {
	if n < 1 || n > Strings {
		return nil
	}
	out := make([]Note, Frets)
	copy(out, catalogue[(n-1)*Frets:n*Frets])
	return out
}

// NotesByFrequency returns every catalogue position within tolerance hertz
// of f, in catalogue order. A negative tolerance is treated as 0.
func NotesByFrequency(f, tolerance float64) []Note {
	tolerance = math.Max(tolerance, 0)

	var out []Note
	for _, n := range catalogue {
		if math.Abs(n.Frequency-f) <= tolerance {
			out = append(out, n)
		}
	}
	return out
}
