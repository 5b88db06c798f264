package model

import (
	"strings"

	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/validate"
)

// KeySignature is a traditional key: a position on the circle of fifths and
// an optional mode.
type KeySignature struct {
	Fifths int
	Mode   string // lower-case, empty when not declared
}

// KeyParams holds the inputs of NewKeySignature.
type KeyParams struct {
	Fifths int
	Mode   string
}

// NewKeySignature validates and constructs a KeySignature.
func NewKeySignature(p KeyParams, loc types.Location) (KeySignature, error) {
	if err := validate.KeyFifths(p.Fifths, loc); err != nil {
		return KeySignature{}, err
	}
	if err := validate.KeyMode(p.Mode, loc); err != nil {
		return KeySignature{}, err
	}
	return KeySignature{Fifths: p.Fifths, Mode: strings.ToLower(strings.TrimSpace(p.Mode))}, nil
}

// TimeSignature is a meter.
type TimeSignature struct {
	Beats    int
	BeatType int
	Symbol   TimeSymbol
}

// TimeParams holds the inputs of NewTimeSignature.
type TimeParams struct {
	Beats    int
	BeatType int
	Symbol   TimeSymbol
}

// NewTimeSignature validates and constructs a TimeSignature. An undeclared
// symbol becomes TimeSymbolNormal; TimeSymbolUnknown is kept.
func NewTimeSignature(p TimeParams, loc types.Location) (TimeSignature, error) {
	if err := validate.TimeBeats(p.Beats, loc); err != nil {
		return TimeSignature{}, err
	}
	if err := validate.TimeBeatType(p.BeatType, loc); err != nil {
		return TimeSignature{}, err
	}
	symbol := p.Symbol
	if symbol == TimeSymbolNone {
		symbol = TimeSymbolNormal
	}
	return TimeSignature{Beats: p.Beats, BeatType: p.BeatType, Symbol: symbol}, nil
}

// MeasureTicks returns the measure length implied for the given divisions.
func (t TimeSignature) MeasureTicks(divisions int) int {
	return validate.ExpectedMeasureTicks(t.Beats, t.BeatType, divisions)
}

// Clef is a <clef> declaration.
type Clef struct {
	Sign         ClefSign
	Line         int // 0 when not declared
	OctaveChange int
	Number       int // staff number, 1 when not declared
}
