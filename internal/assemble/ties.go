package assemble

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/simonhull/musicxml/internal/diag"
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
)

// tieKey identifies the notes a sound tie may connect: same staff, same
// voice, same pitch.
type tieKey struct {
	staff  int
	voice  string
	step   string
	alter  float64
	octave int
}

func (k tieKey) String() string {
	return fmt.Sprintf("%s%g/%d (staff %d, voice %s)", k.step, k.alter, k.octave, k.staff, k.voice)
}

// tieTracker follows open <tie> elements across the measures of one part.
type tieTracker struct {
	part string
	open map[tieKey]types.Location
	diag *diag.Collector
}

func newTieTracker(part string, c *diag.Collector) *tieTracker {
	return &tieTracker{part: part, open: make(map[tieKey]types.Location), diag: c}
}

// measure feeds the notes of m in order. Stops are applied before starts so
// a note that both ends and begins a tie keeps it open.
func (t *tieTracker) measure(m *model.Measure) {
	for i, n := range m.Notes {
		if n.Pitch == nil || len(n.Ties) == 0 {
			continue
		}
		key := tieKey{staff: n.Staff, voice: n.Voice, step: n.Pitch.Step, alter: n.Pitch.Alter, octave: n.Pitch.Octave}
		loc := types.Location{Part: t.part, Measure: m.Number}.With("note", strconv.Itoa(i))

		var start, stop bool
		for _, tie := range n.Ties {
			switch tie.Type {
			case model.TieStart:
				start = true
			case model.TieStop:
				stop = true
			case model.TieContinue:
				start, stop = true, true
			}
		}
		if stop {
			if _, ok := t.open[key]; !ok {
				t.diag.Warn(types.RuleOrphanedTie, loc, "tie stop on %s has no matching start", key)
			}
			delete(t.open, key)
		}
		if start {
			t.open[key] = loc
		}
	}
}

// finish reports every tie still open at the end of the part.
func (t *tieTracker) finish() {
	keys := slices.SortedFunc(maps.Keys(t.open), func(a, b tieKey) int {
		return cmp.Compare(a.String(), b.String())
	})
	for _, key := range keys {
		t.diag.Warn(types.RuleOrphanedTie, t.open[key], "tie start on %s is never stopped", key)
	}
	clear(t.open)
}
