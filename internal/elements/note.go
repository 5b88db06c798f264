package elements

import (
	"strconv"

	"github.com/simonhull/musicxml/internal/beam"
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// NoteResult is a parsed <note> and its beam fragments.
type NoteResult struct {
	Note    model.Note
	Beams   []beam.Fragment
	Skipped bool // the note was dropped with a diagnostic
}

// Note parses a <note>. index is the position the note will take in its
// measure and is recorded on every beam fragment.
//
// A note carrying a duration while no divisions are in effect is skipped
// with a note_skipped_warning.
func Note(n *xmltree.Node, c Context, index int) (NoteResult, error) {
	loc := c.at(n)
	p := model.NoteParams{
		Rest:  n.Has("rest"),
		Chord: n.Has("chord"),
		Grace: n.Has("grace"),
		Cue:   n.Has("cue"),
		Voice: childText(n, "voice"),
		Stem:  childText(n, "stem"),
		Dots:  len(n.ChildrenNamed("dot")),
		Type:  model.NoteTypeNone,
	}
	if rest := n.Child("rest"); rest != nil {
		p.MeasureRest = yes(rest, "measure")
	}
	if acc := n.Child("accidental"); acc != nil {
		p.Accidental = acc.Text()
	}

	var err error
	if p.DefaultX, err = c.attrFloat(n, "default-x", "note/@default-x"); err != nil {
		return NoteResult{}, err
	}
	if p.DefaultY, err = c.attrFloat(n, "default-y", "note/@default-y"); err != nil {
		return NoteResult{}, err
	}
	if p.Dynamics, err = c.attrFloat(n, "dynamics", "note/@dynamics"); err != nil {
		return NoteResult{}, err
	}
	if p.Staff, err = c.optChildInt(n, "staff", "note/staff", 0); err != nil {
		return NoteResult{}, err
	}

	if el := n.Child("pitch"); el != nil {
		pitch, err := Pitch(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		p.Pitch = &pitch
	}
	if el := n.Child("unpitched"); el != nil {
		u, err := Unpitched(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		p.Unpitched = &u
	}

	if el := n.Child("duration"); el != nil {
		if c.Divisions <= 0 {
			c.warn(n, types.RuleNoteSkipped, "note skipped: duration without divisions in effect")
			return NoteResult{Skipped: true}, nil
		}
		d, err := Duration(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		p.Duration = &d
	}

	if el := n.Child("type"); el != nil {
		p.Type, _ = variant(c, el, "note type", el.Text(), model.ParseNoteType)
	}
	if el := n.Child("time-modification"); el != nil {
		tm, err := TimeModification(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		p.TimeModification = &tm
	}
	for _, el := range n.ChildrenNamed("tie") {
		if tie, ok := Tie(el, c); ok {
			p.Ties = append(p.Ties, tie)
		}
	}
	if el := n.Child("notations"); el != nil {
		notations, err := Notations(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		p.Notations = notations
	}

	var frags []beam.Fragment
	for _, el := range n.ChildrenNamed("beam") {
		f, err := Beam(el, c)
		if err != nil {
			return NoteResult{}, err
		}
		f.Note = index
		frags = append(frags, f)
	}

	note, err := model.NewNote(p, loc)
	if err != nil {
		return NoteResult{}, err
	}
	return NoteResult{Note: note, Beams: frags}, nil
}

// Pitch parses a <pitch>.
func Pitch(n *xmltree.Node, c Context) (model.Pitch, error) {
	step, ok := n.ChildText("step")
	if !ok {
		return model.Pitch{}, c.missing(n, "note/pitch/step")
	}
	octave, err := c.childInt(n, "octave", "note/pitch/octave")
	if err != nil {
		return model.Pitch{}, err
	}
	var alter float64
	if text, ok := n.ChildText("alter"); ok {
		alter, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return model.Pitch{}, c.invalid(n, "note/pitch/alter", text, "a decimal")
		}
	}
	return model.NewPitch(model.PitchParams{Step: step, Alter: alter, Octave: octave}, c.at(n))
}

// Unpitched parses an <unpitched>. Both display children are optional.
func Unpitched(n *xmltree.Node, c Context) (model.Unpitched, error) {
	octave, err := c.optChildInt(n, "display-octave", "note/unpitched/display-octave", 0)
	if err != nil {
		return model.Unpitched{}, err
	}
	return model.Unpitched{DisplayStep: childText(n, "display-step"), DisplayOctave: octave}, nil
}

// Duration parses a <duration> against the divisions in effect.
func Duration(n *xmltree.Node, c Context) (model.Duration, error) {
	value, err := c.integer(n, "note/duration")
	if err != nil {
		return model.Duration{}, err
	}
	return model.NewDuration(model.DurationParams{Value: value, Divisions: c.Divisions}, c.at(n))
}

// TimeModification parses a <time-modification>.
func TimeModification(n *xmltree.Node, c Context) (model.TimeModification, error) {
	actual, err := c.childInt(n, "actual-notes", "note/time-modification/actual-notes")
	if err != nil {
		return model.TimeModification{}, err
	}
	normal, err := c.childInt(n, "normal-notes", "note/time-modification/normal-notes")
	if err != nil {
		return model.TimeModification{}, err
	}
	p := model.TimeModificationParams{ActualNotes: actual, NormalNotes: normal}
	if el := n.Child("normal-type"); el != nil {
		p.NormalType, _ = variant(c, el, "normal type", el.Text(), model.ParseNoteType)
	}
	if dots := n.ChildrenNamed("normal-dot"); len(dots) > 0 {
		count := len(dots)
		p.NormalDots = &count
	}
	return model.NewTimeModification(p, c.at(n))
}

// Tie parses a <tie> or <tied>. An unknown type is reported and kept as
// model.TieUnknown; a missing type drops the element.
func Tie(n *xmltree.Node, c Context) (model.Tie, bool) {
	raw, ok := n.LookupAttr("type")
	if !ok {
		c.warn(n, types.RuleUnknownVariant, "%s without type ignored", n.Name())
		return model.Tie{}, false
	}
	typ, _ := variant(c, n, n.Name()+" type", raw, model.ParseTieType)
	return model.Tie{Type: typ}, true
}

// Notations parses the slurs, tied marks and articulations of a
// <notations> element. Other notations are ignored.
func Notations(n *xmltree.Node, c Context) (model.Notations, error) {
	var out model.Notations
	for _, el := range n.Children() {
		switch el.Name() {
		case "slur":
			number, err := c.attrInt(el, "number", "note/notations/slur/@number", 1)
			if err != nil {
				return model.Notations{}, err
			}
			typ, _ := variant(c, el, "slur type", el.Attr("type"), model.ParseSlurType)
			out.Slurs = append(out.Slurs, model.Slur{Type: typ, Number: number, Placement: el.Attr("placement")})
		case "tied":
			if tie, ok := Tie(el, c); ok {
				out.Ties = append(out.Ties, tie)
			}
		case "articulations":
			for _, a := range el.Children() {
				kind, _ := variant(c, a, "articulation", a.Name(), model.ParseArticulationKind)
				out.Articulations = append(out.Articulations, model.Articulation{Kind: kind, Placement: a.Attr("placement")})
			}
		}
	}
	return out, nil
}

// Beam parses one <beam> into a fragment without its note index. Both the
// number and the type are validated.
func Beam(n *xmltree.Node, c Context) (beam.Fragment, error) {
	loc := c.at(n)
	number, err := c.attrInt(n, "number", "note/beam/@number", 1)
	if err != nil {
		return beam.Fragment{}, err
	}
	if err := validate.BeamNumber(number, loc); err != nil {
		return beam.Fragment{}, err
	}
	text := n.Text()
	if err := validate.BeamType(text, loc); err != nil {
		return beam.Fragment{}, err
	}
	typ, _ := model.ParseBeamType(text)
	return beam.Fragment{Number: number, Type: typ}, nil
}

func childText(n *xmltree.Node, name string) string {
	text, _ := n.ChildText(name)
	return text
}
