package validate

import (
	"errors"
	"testing"

	"github.com/simonhull/musicxml/internal/types"
)

var loc = types.Location{Part: "P1", Measure: "1", Line: 10}

// ruleOf returns the rule id of a validation failure, or "" on accept.
func ruleOf(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	var ve *types.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *types.ValidationError, got %T", err)
	}
	if ve.Location.Part != "P1" {
		t.Errorf("location not propagated: %+v", ve.Location)
	}
	return ve.Rule
}

func TestRules(t *testing.T) {
	two, minusOne := 2, -1

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"step C", PitchStep("C", loc), ""},
		{"step H", PitchStep("H", loc), types.RulePitchStep},
		{"step lowercase", PitchStep("c", loc), types.RulePitchStep},
		{"step empty", PitchStep("", loc), types.RulePitchStep},
		{"octave 0", PitchOctave(0, loc), ""},
		{"octave 9", PitchOctave(9, loc), ""},
		{"octave 10", PitchOctave(10, loc), types.RulePitchOctave},
		{"octave -1", PitchOctave(-1, loc), types.RulePitchOctave},
		{"alter -2", PitchAlter(-2, loc), ""},
		{"alter quarter tone", PitchAlter(0.5, loc), ""},
		{"alter 3", PitchAlter(3, loc), types.RulePitchAlter},
		{"duration 1", DurationValue(1, loc), ""},
		{"duration 0", DurationValue(0, loc), types.RuleDurationPositive},
		{"divisions 480", Divisions(480, loc), ""},
		{"divisions 0", Divisions(0, loc), types.RuleDivisionsPositive},
		{"divisions -4", Divisions(-4, loc), types.RuleDivisionsPositive},
		{"fifths 7", KeyFifths(7, loc), ""},
		{"fifths -7", KeyFifths(-7, loc), ""},
		{"fifths 8", KeyFifths(8, loc), types.RuleKeyFifths},
		{"fifths -8", KeyFifths(-8, loc), types.RuleKeyFifths},
		{"mode empty", KeyMode("", loc), ""},
		{"mode Minor", KeyMode("Minor", loc), ""},
		{"mode dorian", KeyMode("dorian", loc), ""},
		{"mode blues", KeyMode("blues", loc), types.RuleKeyMode},
		{"beats 3", TimeBeats(3, loc), ""},
		{"beats 0", TimeBeats(0, loc), types.RuleTimeBeats},
		{"beat type 8", TimeBeatType(8, loc), ""},
		{"beat type 1", TimeBeatType(1, loc), ""},
		{"beat type 6", TimeBeatType(6, loc), types.RuleTimeBeatType},
		{"beat type 0", TimeBeatType(0, loc), types.RuleTimeBeatType},
		{"beat type -4", TimeBeatType(-4, loc), types.RuleTimeBeatType},
		{"rest without pitch", NotePitch(true, false, false, loc), ""},
		{"rest with pitch", NotePitch(true, true, false, loc), types.RuleRestNoPitch},
		{"pitched note", NotePitch(false, true, false, loc), ""},
		{"note without pitch", NotePitch(false, false, false, loc), types.RulePitchRequired},
		{"unpitched note", NotePitch(false, false, true, loc), ""},
		{"beam 1", BeamNumber(1, loc), ""},
		{"beam 0", BeamNumber(0, loc), types.RuleBeamNumber},
		{"beam type begin", BeamType("begin", loc), ""},
		{"beam type hook", BeamType("backward hook", loc), ""},
		{"beam type start", BeamType("start", loc), types.RuleBeamType},
		{"beam 2 notes", BeamNotes(false, 2, loc), ""},
		{"beam 1 note", BeamNotes(false, 1, loc), types.RuleBeamNoteCount},
		{"hook 1 note", BeamNotes(true, 1, loc), ""},
		{"triplet", TimeModification(3, 2, nil, loc), ""},
		{"triplet dotted", TimeModification(3, 2, &two, loc), ""},
		{"actual 0", TimeModification(0, 2, nil, loc), types.RuleTimeModActual},
		{"normal 0", TimeModification(3, 0, nil, loc), types.RuleTimeModNormal},
		{"dots negative", TimeModification(3, 2, &minusOne, loc), types.RuleTimeModDots},
		{"duration match", MeasureDuration(16, 16, loc), ""},
		{"duration mismatch", MeasureDuration(12, 16, loc), types.RuleMeasureDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ruleOf(t, tt.err); got != tt.want {
				t.Errorf("rule = %q, want %q (err: %v)", got, tt.want, tt.err)
			}
		})
	}
}

func TestMeasureNumber(t *testing.T) {
	tests := []struct {
		number   string
		implicit bool
		want     int
		rule     string
	}{
		{"1", false, 1, ""},
		{"12", true, 12, ""},
		{"0", true, 0, ""},
		{"0", false, 0, types.RuleMeasureNumber},
		{"-1", false, 0, types.RuleMeasureNumber},
		{"1a", false, 0, types.RuleMeasureNumber},
		{"", false, 0, types.RuleMeasureNumber},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got, err := MeasureNumber(tt.number, tt.implicit, loc)
			if rule := ruleOf(t, err); rule != tt.rule {
				t.Fatalf("rule = %q, want %q", rule, tt.rule)
			}
			if got != tt.want {
				t.Errorf("MeasureNumber(%q) = %d, want %d", tt.number, got, tt.want)
			}
		})
	}
}

func TestExpectedMeasureTicks(t *testing.T) {
	tests := []struct {
		beats, beatType, divisions, want int
	}{
		{4, 4, 1, 4},
		{3, 4, 480, 1440},
		{6, 8, 2, 6},
		{2, 2, 4, 16},
		{4, 0, 4, 0},
	}
	for _, tt := range tests {
		if got := ExpectedMeasureTicks(tt.beats, tt.beatType, tt.divisions); got != tt.want {
			t.Errorf("ExpectedMeasureTicks(%d, %d, %d) = %d, want %d",
				tt.beats, tt.beatType, tt.divisions, got, tt.want)
		}
	}
}
