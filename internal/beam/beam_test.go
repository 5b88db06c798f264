package beam

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/simonhull/musicxml/internal/model"
)

func frag(number int, typ model.BeamType, note int) Fragment {
	return Fragment{Number: number, Type: typ, Note: note}
}

func beam(number int, typ model.BeamType, notes ...int) model.Beam {
	return model.Beam{Number: number, Type: typ, Measure: "1", Notes: notes}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name  string
		input []Fragment
		want  []model.Beam
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "begin continue end",
			input: []Fragment{frag(1, model.BeamBegin, 0), frag(1, model.BeamContinue, 1), frag(1, model.BeamEnd, 2)},
			want:  []model.Beam{beam(1, model.BeamBegin, 0, 1, 2)},
		},
		{
			name:  "dangling continue",
			input: []Fragment{frag(1, model.BeamContinue, 0)},
			want:  []model.Beam{beam(1, model.BeamContinue, 0)},
		},
		{
			name:  "dangling end after closed group",
			input: []Fragment{frag(1, model.BeamBegin, 0), frag(1, model.BeamEnd, 1), frag(1, model.BeamEnd, 2)},
			want:  []model.Beam{beam(1, model.BeamBegin, 0, 1), beam(1, model.BeamEnd, 2)},
		},
		{
			name: "hook inside open group",
			input: []Fragment{
				frag(1, model.BeamBegin, 0),
				frag(1, model.BeamForwardHook, 1),
				frag(1, model.BeamEnd, 2),
			},
			want: []model.Beam{beam(1, model.BeamForwardHook, 1), beam(1, model.BeamBegin, 0, 2)},
		},
		{
			name:  "hook while idle",
			input: []Fragment{frag(2, model.BeamBackwardHook, 3)},
			want:  []model.Beam{beam(2, model.BeamBackwardHook, 3)},
		},
		{
			name:  "begin while open flushes",
			input: []Fragment{frag(1, model.BeamBegin, 0), frag(1, model.BeamContinue, 1), frag(1, model.BeamBegin, 2), frag(1, model.BeamEnd, 3)},
			want:  []model.Beam{beam(1, model.BeamBegin, 0, 1), beam(1, model.BeamBegin, 2, 3)},
		},
		{
			name:  "never closed",
			input: []Fragment{frag(1, model.BeamBegin, 0), frag(1, model.BeamContinue, 1)},
			want:  []model.Beam{beam(1, model.BeamBegin, 0, 1)},
		},
		{
			name:  "unsorted input",
			input: []Fragment{frag(1, model.BeamEnd, 2), frag(1, model.BeamBegin, 0), frag(1, model.BeamContinue, 1)},
			want:  []model.Beam{beam(1, model.BeamBegin, 0, 1, 2)},
		},
		{
			name: "multiple numbers in ascending order",
			input: []Fragment{
				frag(2, model.BeamBegin, 0), frag(1, model.BeamBegin, 0),
				frag(2, model.BeamEnd, 1), frag(1, model.BeamContinue, 1),
				frag(1, model.BeamEnd, 2),
			},
			want: []model.Beam{beam(1, model.BeamBegin, 0, 1, 2), beam(2, model.BeamBegin, 0, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.input, "1")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge_DoesNotLoseNotes(t *testing.T) {
	input := []Fragment{
		frag(1, model.BeamContinue, 4),
		frag(1, model.BeamBegin, 0),
		frag(1, model.BeamForwardHook, 2),
		frag(1, model.BeamContinue, 1),
		frag(1, model.BeamEnd, 5),
	}

	seen := make(map[int]bool)
	for _, b := range Merge(input, "7") {
		if b.Measure != "7" {
			t.Errorf("Measure = %q, want 7", b.Measure)
		}
		for _, n := range b.Notes {
			seen[n] = true
		}
	}
	for _, f := range input {
		if !seen[f.Note] {
			t.Errorf("note %d lost", f.Note)
		}
	}
}
