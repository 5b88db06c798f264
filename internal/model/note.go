package model

import (
	"strings"

	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
)

// Pitch is a sounding pitch.
type Pitch struct {
	Step   string  // A-G
	Alter  float64 // semitones, may be fractional for microtones
	Octave int     // 4 is the octave starting at middle C
}

// PitchParams holds the inputs of NewPitch.
type PitchParams struct {
	Step   string
	Alter  float64
	Octave int
}

// NewPitch validates and constructs a Pitch.
func NewPitch(p PitchParams, loc types.Location) (Pitch, error) {
	step := strings.TrimSpace(p.Step)
	if err := validate.PitchStep(step, loc); err != nil {
		return Pitch{}, err
	}
	if err := validate.PitchOctave(p.Octave, loc); err != nil {
		return Pitch{}, err
	}
	if err := validate.PitchAlter(p.Alter, loc); err != nil {
		return Pitch{}, err
	}
	return Pitch{Step: step, Alter: p.Alter, Octave: p.Octave}, nil
}

// Unpitched is the staff position of a percussion note.
type Unpitched struct {
	DisplayStep   string
	DisplayOctave int
}

// Duration is a length in ticks relative to the divisions in effect.
type Duration struct {
	Value     int
	Divisions int
}

// DurationParams holds the inputs of NewDuration.
type DurationParams struct {
	Value     int
	Divisions int
}

// NewDuration validates and constructs a Duration.
func NewDuration(p DurationParams, loc types.Location) (Duration, error) {
	if err := validate.DurationValue(p.Value, loc); err != nil {
		return Duration{}, err
	}
	if err := validate.Divisions(p.Divisions, loc); err != nil {
		return Duration{}, err
	}
	return Duration{Value: p.Value, Divisions: p.Divisions}, nil
}

// Quarters returns the length in quarter notes.
func (d Duration) Quarters() float64 {
	if d.Divisions == 0 {
		return 0
	}
	return float64(d.Value) / float64(d.Divisions)
}

// TimeModification describes a tuplet ratio.
type TimeModification struct {
	ActualNotes int
	NormalNotes int
	NormalType  NoteType
	NormalDots  *int
}

// TimeModificationParams holds the inputs of NewTimeModification.
type TimeModificationParams struct {
	ActualNotes int
	NormalNotes int
	NormalType  NoteType
	NormalDots  *int
}

// NewTimeModification validates and constructs a TimeModification.
func NewTimeModification(p TimeModificationParams, loc types.Location) (TimeModification, error) {
	if err := validate.TimeModification(p.ActualNotes, p.NormalNotes, p.NormalDots, loc); err != nil {
		return TimeModification{}, err
	}
	tm := TimeModification{
		ActualNotes: p.ActualNotes,
		NormalNotes: p.NormalNotes,
		NormalType:  p.NormalType,
	}
	if p.NormalDots != nil {
		dots := *p.NormalDots
		tm.NormalDots = &dots
	}
	return tm, nil
}

// Slur is a <slur> notation.
type Slur struct {
	Type      SlurType
	Number    int
	Placement string
}

// Tie is a sound <tie> or a notated <tied>.
type Tie struct {
	Type TieType
}

// Articulation is one child of <articulations>.
type Articulation struct {
	Kind      ArticulationKind
	Placement string
}

// Notations groups the modelled children of <notations>.
type Notations struct {
	Slurs         []Slur
	Ties          []Tie // from <tied>
	Articulations []Articulation
}

// Empty reports whether no notation was recorded.
func (n Notations) Empty() bool {
	return len(n.Slurs) == 0 && len(n.Ties) == 0 && len(n.Articulations) == 0
}

// Note is a single <note>: a pitched note, an unpitched note or a rest.
type Note struct {
	Pitch            *Pitch
	Unpitched        *Unpitched
	Duration         *Duration
	TimeModification *TimeModification
	DefaultX         *float64
	DefaultY         *float64
	Dynamics         *float64
	Type             NoteType
	Voice            string
	Accidental       string
	Stem             string
	Notations        Notations
	Ties             []Tie // from <tie>
	Staff            int
	Dots             int
	Rest             bool
	MeasureRest      bool
	Chord            bool
	Grace            bool
	Cue              bool
}

// NoteParams holds the inputs of NewNote.
type NoteParams struct {
	Pitch            *Pitch
	Unpitched        *Unpitched
	Duration         *Duration
	TimeModification *TimeModification
	DefaultX         *float64
	DefaultY         *float64
	Dynamics         *float64
	Type             NoteType
	Voice            string
	Accidental       string
	Stem             string
	Notations        Notations
	Ties             []Tie
	Staff            int
	Dots             int
	Rest             bool
	MeasureRest      bool
	Chord            bool
	Grace            bool
	Cue              bool
}

// NewNote validates the rest/pitch invariant and constructs a Note.
func NewNote(p NoteParams, loc types.Location) (Note, error) {
	if err := validate.NotePitch(p.Rest, p.Pitch != nil, p.Unpitched != nil, loc); err != nil {
		return Note{}, err
	}
	return Note(p), nil
}

// IsRest reports whether the note is a rest.
func (n Note) IsRest() bool { return n.Rest }

// Quarters returns the note length in quarter notes, 0 for grace notes.
func (n Note) Quarters() float64 {
	if n.Duration == nil {
		return 0
	}
	return n.Duration.Quarters()
}

// Ticks returns the duration value, 0 when the note has no duration.
func (n Note) Ticks() int {
	if n.Duration == nil {
		return 0
	}
	return n.Duration.Value
}
