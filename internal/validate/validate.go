// Package validate implements the music-notation rules applied to every
// model value before it is constructed.
//
// Each rule is a pure function: it returns nil when the value is accepted
// and a *types.ValidationError tagged with the rule id otherwise.
package validate

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/simonhull/musicxml/internal/types"
)

// Modes is the closed vocabulary accepted for key/mode.
var Modes = []string{
	"major", "minor", "dorian", "phrygian", "lydian",
	"mixolydian", "aeolian", "ionian", "locrian", "none",
}

// BeamTypes is the closed vocabulary accepted for beam text.
var BeamTypes = []string{"begin", "continue", "end", "forward hook", "backward hook"}

func fail(rule string, loc types.Location, format string, args ...any) error {
	return &types.ValidationError{
		Rule:     rule,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// PitchStep accepts A through G.
func PitchStep(step string, loc types.Location) error {
	if len(step) != 1 || step[0] < 'A' || step[0] > 'G' {
		return fail(types.RulePitchStep, loc, "pitch step must be one of A-G, got %q", step)
	}
	return nil
}

// PitchOctave accepts 0 through 9.
func PitchOctave(octave int, loc types.Location) error {
	if octave < 0 || octave > 9 {
		return fail(types.RulePitchOctave, loc, "octave must be in [0,9], got %d", octave)
	}
	return nil
}

// PitchAlter accepts chromatic alterations in [-2,2], microtones included.
func PitchAlter(alter float64, loc types.Location) error {
	if alter < -2 || alter > 2 {
		return fail(types.RulePitchAlter, loc, "alter must be in [-2,2], got %g", alter)
	}
	return nil
}

// DurationValue requires a positive tick count.
func DurationValue(value int, loc types.Location) error {
	if value <= 0 {
		return fail(types.RuleDurationPositive, loc, "duration must be positive, got %d", value)
	}
	return nil
}

// Divisions requires a positive ticks-per-quarter value.
func Divisions(divisions int, loc types.Location) error {
	if divisions <= 0 {
		return fail(types.RuleDivisionsPositive, loc, "divisions must be positive, got %d", divisions)
	}
	return nil
}

// KeyFifths accepts -7 (seven flats) through 7 (seven sharps).
func KeyFifths(fifths int, loc types.Location) error {
	if fifths < -7 || fifths > 7 {
		return fail(types.RuleKeyFifths, loc, "key fifths must be in [-7,7], got %d", fifths)
	}
	return nil
}

// KeyMode accepts an empty mode or one of Modes, ignoring case.
func KeyMode(mode string, loc types.Location) error {
	if mode == "" {
		return nil
	}
	m := strings.ToLower(strings.TrimSpace(mode))
	for _, known := range Modes {
		if m == known {
			return nil
		}
	}
	return fail(types.RuleKeyMode, loc, "unknown key mode %q", mode)
}

// TimeBeats requires a positive beat count.
func TimeBeats(beats int, loc types.Location) error {
	if beats <= 0 {
		return fail(types.RuleTimeBeats, loc, "time signature beats must be positive, got %d", beats)
	}
	return nil
}

// TimeBeatType requires a positive power of two.
func TimeBeatType(beatType int, loc types.Location) error {
	if beatType <= 0 || bits.OnesCount(uint(beatType)) != 1 {
		return fail(types.RuleTimeBeatType, loc, "time signature beat type must be a positive power of two, got %d", beatType)
	}
	return nil
}

// NotePitch enforces that rests carry no pitch and that every other note
// except an unpitched one does.
func NotePitch(rest, hasPitch, unpitched bool, loc types.Location) error {
	if rest && hasPitch {
		return fail(types.RuleRestNoPitch, loc, "rest note must not carry a pitch")
	}
	if !rest && !unpitched && !hasPitch {
		return fail(types.RulePitchRequired, loc, "non-rest note requires a pitch")
	}
	return nil
}

// BeamNumber requires a 1-indexed beam line.
func BeamNumber(number int, loc types.Location) error {
	if number <= 0 {
		return fail(types.RuleBeamNumber, loc, "beam number must be positive, got %d", number)
	}
	return nil
}

// BeamType accepts the values in BeamTypes.
func BeamType(value string, loc types.Location) error {
	for _, known := range BeamTypes {
		if value == known {
			return nil
		}
	}
	return fail(types.RuleBeamType, loc, "unknown beam type %q", value)
}

// BeamNotes requires a non-hook beam to connect at least two notes.
func BeamNotes(hook bool, count int, loc types.Location) error {
	if !hook && count < 2 {
		return fail(types.RuleBeamNoteCount, loc, "beam must connect at least 2 notes, got %d", count)
	}
	return nil
}

// TimeModification checks a tuplet ratio. normalDots may be nil.
func TimeModification(actual, normal int, normalDots *int, loc types.Location) error {
	if actual <= 0 {
		return fail(types.RuleTimeModActual, loc, "actual-notes must be positive, got %d", actual)
	}
	if normal <= 0 {
		return fail(types.RuleTimeModNormal, loc, "normal-notes must be positive, got %d", normal)
	}
	if normalDots != nil && *normalDots < 0 {
		return fail(types.RuleTimeModDots, loc, "normal-dot count must be non-negative, got %d", *normalDots)
	}
	return nil
}

// MeasureNumber parses a measure number. It must be a non-negative integer,
// and 0 is only legal on an implicit (pickup) measure.
func MeasureNumber(number string, implicit bool, loc types.Location) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil || n < 0 {
		return 0, fail(types.RuleMeasureNumber, loc, "measure number must be a non-negative integer, got %q", number)
	}
	if n == 0 && !implicit {
		return 0, fail(types.RuleMeasureNumber, loc, "measure number 0 requires implicit=\"yes\"")
	}
	return n, nil
}

// ExpectedMeasureTicks returns beats × divisions × 4 / beatType.
func ExpectedMeasureTicks(beats, beatType, divisions int) int {
	if beatType <= 0 {
		return 0
	}
	return beats * divisions * 4 / beatType
}

// MeasureDuration reconciles the actual length of a measure with its time
// signature.
func MeasureDuration(actual, expected int, loc types.Location) error {
	if actual != expected {
		return fail(types.RuleMeasureDuration, loc, "measure lasts %d ticks, time signature implies %d", actual, expected)
	}
	return nil
}
