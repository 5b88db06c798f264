package elements

import (
	"strconv"
	"strings"

	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Attributes is the content of one <attributes> element. Nil fields were not
// declared and leave the context in effect unchanged.
type Attributes struct {
	Divisions *int
	Key       *model.KeySignature
	Time      *model.TimeSignature
	Staves    *int
	Clefs     []model.Clef
}

// ParseAttributes parses an <attributes> element. Only the first <key> and
// the first <time> are used.
func ParseAttributes(n *xmltree.Node, c Context) (Attributes, error) {
	var out Attributes

	if el := n.Child("divisions"); el != nil {
		d, err := c.integer(el, "attributes/divisions")
		if err != nil {
			return Attributes{}, err
		}
		if err := validate.Divisions(d, c.at(el)); err != nil {
			return Attributes{}, err
		}
		out.Divisions = &d
	}

	if el := n.Child("key"); el != nil {
		key, ok, err := Key(el, c)
		if err != nil {
			return Attributes{}, err
		}
		if ok {
			out.Key = &key
		}
	}

	if el := n.Child("time"); el != nil {
		ts, ok, err := Time(el, c)
		if err != nil {
			return Attributes{}, err
		}
		if ok {
			out.Time = &ts
		}
	}

	if el := n.Child("staves"); el != nil {
		s, err := c.integer(el, "attributes/staves")
		if err != nil {
			return Attributes{}, err
		}
		out.Staves = &s
	}

	for _, el := range n.ChildrenNamed("clef") {
		clef, err := Clef(el, c)
		if err != nil {
			return Attributes{}, err
		}
		out.Clefs = append(out.Clefs, clef)
	}
	return out, nil
}

// Key parses a traditional <key>. A non-traditional key (key-step/key-alter
// sequences) is reported and ignored.
func Key(n *xmltree.Node, c Context) (model.KeySignature, bool, error) {
	el := n.Child("fifths")
	if el == nil {
		c.warn(n, types.RuleUnknownVariant, "non-traditional key signature ignored")
		return model.KeySignature{}, false, nil
	}
	fifths, err := c.integer(el, "attributes/key/fifths")
	if err != nil {
		return model.KeySignature{}, false, err
	}
	key, err := model.NewKeySignature(model.KeyParams{Fifths: fifths, Mode: childText(n, "mode")}, c.at(n))
	if err != nil {
		return model.KeySignature{}, false, err
	}
	return key, true, nil
}

// Time parses a <time>. Composite beats such as "3+2" are summed. A
// senza-misura time is reported and leaves the meter unchanged.
func Time(n *xmltree.Node, c Context) (model.TimeSignature, bool, error) {
	if n.Has("senza-misura") {
		c.warn(n, types.RuleSenzaMisura, "senza-misura time has no meter; previous time signature kept")
		return model.TimeSignature{}, false, nil
	}

	beatsEl := n.Child("beats")
	if beatsEl == nil {
		return model.TimeSignature{}, false, c.missing(n, "attributes/time/beats")
	}
	beats, err := compositeBeats(beatsEl.Text())
	if err != nil {
		return model.TimeSignature{}, false, c.invalid(beatsEl, "attributes/time/beats", beatsEl.Text(), "an integer or sum of integers")
	}
	beatType, err := c.childInt(n, "beat-type", "attributes/time/beat-type")
	if err != nil {
		return model.TimeSignature{}, false, err
	}

	p := model.TimeParams{Beats: beats, BeatType: beatType}
	if raw, ok := n.LookupAttr("symbol"); ok {
		p.Symbol, _ = variant(c, n, "time symbol", raw, model.ParseTimeSymbol)
	}
	ts, err := model.NewTimeSignature(p, c.at(n))
	if err != nil {
		return model.TimeSignature{}, false, err
	}
	return ts, true, nil
}

func compositeBeats(text string) (int, error) {
	sum := 0
	for part := range strings.SplitSeq(text, "+") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// Clef parses a <clef>.
func Clef(n *xmltree.Node, c Context) (model.Clef, error) {
	signEl := n.Child("sign")
	if signEl == nil {
		return model.Clef{}, c.missing(n, "attributes/clef/sign")
	}
	sign, _ := variant(c, signEl, "clef sign", signEl.Text(), model.ParseClefSign)

	line, err := c.optChildInt(n, "line", "attributes/clef/line", 0)
	if err != nil {
		return model.Clef{}, err
	}
	octave, err := c.optChildInt(n, "clef-octave-change", "attributes/clef/clef-octave-change", 0)
	if err != nil {
		return model.Clef{}, err
	}
	number, err := c.attrInt(n, "number", "attributes/clef/@number", 1)
	if err != nil {
		return model.Clef{}, err
	}
	return model.Clef{Sign: sign, Line: line, OctaveChange: octave, Number: number}, nil
}
