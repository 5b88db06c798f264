// Package beam rebuilds beam groups from the per-note <beam> markers of a
// measure.
package beam

import (
	"slices"

	"github.com/simonhull/musicxml/internal/model"
)

// Fragment is one <beam> element of one note.
type Fragment struct {
	Number int
	Type   model.BeamType
	Note   int // index of the note within its measure
}

// Merge groups fragments into beams. Beam lines are processed in ascending
// number order and, within a line, in note order. Hooks and dangling
// continue/end markers become single-note beams; a group left open at the
// end of the measure is kept.
func Merge(fragments []Fragment, measure string) []model.Beam {
	if len(fragments) == 0 {
		return nil
	}

	lines := make(map[int][]Fragment)
	for _, f := range fragments {
		lines[f.Number] = append(lines[f.Number], f)
	}
	numbers := make([]int, 0, len(lines))
	for n := range lines {
		numbers = append(numbers, n)
	}
	slices.Sort(numbers)

	var out []model.Beam
	for _, n := range numbers {
		line := lines[n]
		slices.SortStableFunc(line, func(a, b Fragment) int { return a.Note - b.Note })
		out = mergeLine(out, line, n, measure)
	}
	return out
}

func mergeLine(out []model.Beam, line []Fragment, number int, measure string) []model.Beam {
	var open *model.Beam
	flush := func() {
		if open != nil && len(open.Notes) > 0 {
			out = append(out, *open)
		}
		open = nil
	}
	single := func(f Fragment) {
		out = append(out, model.Beam{Number: number, Type: f.Type, Measure: measure, Notes: []int{f.Note}})
	}

	for _, f := range line {
		switch {
		case f.Type.Hook():
			single(f)
		case f.Type == model.BeamBegin:
			flush()
			open = &model.Beam{Number: number, Type: f.Type, Measure: measure, Notes: []int{f.Note}}
		case open == nil:
			single(f)
		default:
			open.Notes = append(open.Notes, f.Note)
			if f.Type == model.BeamEnd {
				flush()
			}
		}
	}
	flush()
	return out
}
