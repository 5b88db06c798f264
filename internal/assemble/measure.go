package assemble

import (
	"strconv"
	"strings"

	"github.com/simonhull/musicxml/internal/beam"
	"github.com/simonhull/musicxml/internal/elements"
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Measure assembles one <measure>. inherited is the context in effect when
// the measure starts; the returned State is the context in effect when it
// ends and is what the next measure of the part inherits.
func Measure(n *xmltree.Node, partID string, inherited State, opts Options) (model.Measure, State, error) {
	opts = opts.normalized()
	loc := types.Location{Part: partID, Line: n.Line()}

	number, ok := n.LookupAttr("number")
	if !ok || strings.TrimSpace(number) == "" {
		return model.Measure{}, inherited, &types.StructuralError{
			Path:     "measure/@number",
			Message:  "required element or attribute missing",
			Location: loc,
		}
	}
	number = strings.TrimSpace(number)
	loc.Measure = number
	implicit := n.Attr("implicit") == "yes"
	if _, err := validate.MeasureNumber(number, implicit, loc); err != nil {
		return model.Measure{}, inherited, err
	}

	p := model.MeasureParams{Number: number, Implicit: implicit}
	if raw, ok := n.LookupAttr("width"); ok {
		w, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return model.Measure{}, inherited, &types.StructuralError{
				Path:     "measure/@width",
				Message:  strconv.Quote(raw) + " is not a decimal",
				Location: loc,
			}
		}
		p.Width = &w
	}

	w := measureWalk{
		state: inherited,
		ctx: elements.Context{
			Loc:    types.Location{Part: partID, Measure: number},
			Diag:   opts.Diag,
			Layout: opts.Layout,
		},
		params: &p,
	}
	for _, child := range n.Children() {
		if err := w.visit(child); err != nil {
			return model.Measure{}, inherited, err
		}
	}

	p.Divisions = w.state.Divisions
	p.Key = w.state.Key
	p.Time = w.state.Time
	p.Beams = beam.Merge(w.fragments, number)
	for _, b := range p.Beams {
		if err := validate.BeamNotes(b.Type.Hook(), len(b.Notes), loc); err != nil {
			bloc := loc.With("beam", strconv.Itoa(b.Number)).With("notes", joinInts(b.Notes))
			opts.Diag.Warn(types.RuleBeamNoteCount, bloc, "beam %d kept with %d note(s): %s", b.Number, len(b.Notes), b.Type)
		}
	}

	m, err := model.NewMeasure(p, loc)
	if err != nil {
		return model.Measure{}, inherited, err
	}
	if err := checkDuration(&m, loc, opts); err != nil {
		return model.Measure{}, inherited, err
	}
	return m, w.state, nil
}

// measureWalk is the per-measure state of the child walk.
type measureWalk struct {
	state     State
	ctx       elements.Context
	params    *model.MeasureParams
	fragments []beam.Fragment
}

func (w *measureWalk) visit(el *xmltree.Node) error {
	switch el.Name() {
	case "attributes":
		return w.attributes(el)
	case "note":
		return w.note(el)
	case "backup", "forward":
		return w.skip(el)
	case "barline":
		b, err := elements.Barline(el, w.ctx)
		if err != nil {
			return err
		}
		w.params.Barlines = append(w.params.Barlines, b)
		if b.Ending != nil {
			w.params.Endings = append(w.params.Endings, *b.Ending)
		}
	case "ending":
		if e, ok := elements.Ending(el, w.ctx); ok {
			w.params.Endings = append(w.params.Endings, e)
		}
	case "direction":
		d, ok, err := elements.Direction(el, w.ctx)
		if err != nil {
			return err
		}
		if ok {
			w.params.Directions = append(w.params.Directions, d)
		}
	case "print":
		if w.params.Print != nil {
			w.ctx.Diag.Warn(types.RulePrintDuplicate, w.ctx.Loc.AtLine(el.Line()), "extra print element dropped; only the first in a measure is kept")
			break
		}
		pr := elements.Print(el, w.ctx)
		w.params.Print = &pr
	}
	return nil
}

// attributes applies an <attributes> element. Declared values override the
// inherited ones from this point on.
func (w *measureWalk) attributes(el *xmltree.Node) error {
	w.ctx.Divisions = w.state.Divisions
	a, err := elements.ParseAttributes(el, w.ctx)
	if err != nil {
		return err
	}
	if a.Divisions != nil {
		w.state.Divisions = *a.Divisions
	}
	if a.Key != nil {
		w.state.Key = a.Key
	}
	if a.Time != nil {
		w.state.Time = a.Time
	}
	if a.Staves != nil {
		w.params.Staves = *a.Staves
	}
	w.params.Clefs = append(w.params.Clefs, a.Clefs...)
	return nil
}

func (w *measureWalk) note(el *xmltree.Node) error {
	w.ctx.Divisions = w.state.Divisions
	res, err := elements.Note(el, w.ctx, len(w.params.Notes))
	if err != nil {
		return err
	}
	if res.Skipped {
		return nil
	}
	w.params.Notes = append(w.params.Notes, res.Note)
	w.fragments = append(w.fragments, res.Beams...)
	return nil
}

// skip checks a <backup> or <forward> and records that its timeline effect
// is not applied.
func (w *measureWalk) skip(el *xmltree.Node) error {
	name := el.Name()
	loc := w.ctx.Loc.AtLine(el.Line())
	d := el.Child("duration")
	if d == nil {
		return &types.StructuralError{Path: name + "/duration", Message: "required element or attribute missing", Location: loc}
	}
	ticks, err := strconv.Atoi(d.Text())
	if err != nil || ticks < 0 {
		return &types.StructuralError{Path: name + "/duration", Message: strconv.Quote(d.Text()) + " is not a non-negative integer", Location: loc}
	}

	rule := types.RuleBackupUnsupported
	if name == "forward" {
		rule = types.RuleForwardUnsupported
	}
	w.ctx.Diag.Warn(rule, loc, "%s of %d ticks recorded but not applied to the voice timeline", name, ticks)
	return nil
}

// checkDuration reconciles the notes of m with its time signature. The
// length of a measure is its longest voice; chord members and grace notes
// do not advance time.
func checkDuration(m *model.Measure, loc types.Location, opts Options) error {
	if opts.DurationCheck == DurationCheckOff || m.Implicit || m.Time == nil || m.Divisions <= 0 {
		return nil
	}

	voices := make(map[string]int)
	for _, n := range m.Notes {
		if n.Chord || n.Grace || n.Duration == nil {
			continue
		}
		voice := n.Voice
		if voice == "" {
			voice = "1"
		}
		voices[voice] += n.Duration.Value
	}
	if len(voices) == 0 {
		return nil
	}
	actual := 0
	for _, ticks := range voices {
		actual = max(actual, ticks)
	}

	expected := m.Time.MeasureTicks(m.Divisions)
	if opts.DurationCheck == DurationCheckStrict {
		return validate.MeasureDuration(actual, expected, loc)
	}
	if actual != expected {
		opts.Diag.Warn(types.RuleMeasureDurationAdvisory, loc, "measure lasts %d ticks, time signature implies %d", actual, expected)
	}
	return nil
}

func joinInts(v []int) string {
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ",")
}
