// Package model defines the immutable score tree produced by a parse.
//
// Values are built once through the New* factories, which run the rules in
// package validate, and are never mutated after being attached to their
// parent. Slices and pointers reachable from a Score must be treated as
// read-only by callers.
package model

import (
	"iter"

	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
)

// UnknownPartName is the display name used when no part-list is present.
const UnknownPartName = "unknown"

// Measure is one <measure> of a part.
type Measure struct {
	Key        *KeySignature  // resolved, possibly inherited
	Time       *TimeSignature // resolved, possibly inherited
	Width      *float64
	Print      *Print
	Number     string
	Clefs      []Clef // declared in this measure
	Notes      []Note
	Beams      []Beam
	Barlines   []Barline
	Endings    []Ending
	Directions []Direction
	Divisions  int // resolved, 0 when never declared
	Staves     int // declared in this measure, 0 otherwise
	Implicit   bool
	IsPickup   bool
}

// MeasureParams holds the inputs of NewMeasure.
type MeasureParams struct {
	Key        *KeySignature
	Time       *TimeSignature
	Width      *float64
	Print      *Print
	Number     string
	Clefs      []Clef
	Notes      []Note
	Beams      []Beam
	Barlines   []Barline
	Endings    []Ending
	Directions []Direction
	Divisions  int
	Staves     int
	Implicit   bool
}

// NewMeasure validates the measure number and constructs a Measure.
// Measure "0" is only accepted when implicit, and is then a pickup.
func NewMeasure(p MeasureParams, loc types.Location) (Measure, error) {
	n, err := validate.MeasureNumber(p.Number, p.Implicit, loc)
	if err != nil {
		return Measure{}, err
	}
	return Measure{
		Key:        p.Key,
		Time:       p.Time,
		Width:      p.Width,
		Print:      p.Print,
		Number:     p.Number,
		Clefs:      p.Clefs,
		Notes:      p.Notes,
		Beams:      p.Beams,
		Barlines:   p.Barlines,
		Endings:    p.Endings,
		Directions: p.Directions,
		Divisions:  p.Divisions,
		Staves:     p.Staves,
		Implicit:   p.Implicit,
		IsPickup:   n == 0 && p.Implicit,
	}, nil
}

// BeamsNumbered returns the beams on the given beam line.
func (m *Measure) BeamsNumbered(number int) []Beam {
	var out []Beam
	for _, b := range m.Beams {
		if b.Number == number {
			out = append(out, b)
		}
	}
	return out
}

// ScorePart is a <score-part> entry of the part-list.
type ScorePart struct {
	ID           string
	Name         string
	Abbreviation string
}

// Part is one <part> of a partwise score.
type Part struct {
	ID       string
	Name     string
	Measures []Measure
}

// Measure returns the first measure with the given number.
func (p *Part) Measure(number string) (*Measure, bool) {
	for i := range p.Measures {
		if p.Measures[i].Number == number {
			return &p.Measures[i], true
		}
	}
	return nil, false
}

// Work is the <work> block.
type Work struct {
	Number string
	Title  string
}

// Creator is an <identification>/<creator> entry.
type Creator struct {
	Type string // composer, lyricist, arranger, ...
	Name string
}

// Encoding is the subset of <encoding> that is kept.
type Encoding struct {
	Software []string
	Date     string
}

// Identification is the <identification> block.
type Identification struct {
	Creators []Creator
	Rights   []string
	Encoding Encoding
}

// Score is a parsed score-partwise document.
type Score struct {
	Version        string
	Work           Work
	MovementNumber string
	MovementTitle  string
	Identification Identification
	Defaults       []Layout
	PartList       []ScorePart
	Parts          []Part
}

// Title returns the work title, falling back to the movement title.
func (s *Score) Title() string {
	if s.Work.Title != "" {
		return s.Work.Title
	}
	return s.MovementTitle
}

// Composer returns the first creator with type "composer".
func (s *Score) Composer() string {
	for _, c := range s.Identification.Creators {
		if c.Type == "composer" {
			return c.Name
		}
	}
	return ""
}

// Part returns the part with the given id.
func (s *Score) Part(id string) (*Part, bool) {
	for i := range s.Parts {
		if s.Parts[i].ID == id {
			return &s.Parts[i], true
		}
	}
	return nil, false
}

// NotePosition locates a note yielded by Score.Notes.
type NotePosition struct {
	Part    string
	Measure string
	Index   int // index within Measure.Notes
}

// Notes iterates over every note in document order, part by part.
func (s *Score) Notes() iter.Seq2[NotePosition, Note] {
	return func(yield func(NotePosition, Note) bool) {
		for pi := range s.Parts {
			part := &s.Parts[pi]
			for mi := range part.Measures {
				m := &part.Measures[mi]
				for ni, n := range m.Notes {
					if !yield(NotePosition{Part: part.ID, Measure: m.Number, Index: ni}, n) {
						return
					}
				}
			}
		}
	}
}
