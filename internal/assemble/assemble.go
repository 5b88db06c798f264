// Package assemble walks a partwise MusicXML tree and builds the score
// model: Score, then each Part, then each Measure, handing individual
// elements to package elements.
//
// Divisions, key and time signature are threaded forward from one measure
// to the next within a part. Nothing is shared between parts or between
// calls; every piece of mutable state lives on the stack of the call that
// owns it.
package assemble

import (
	"fmt"
	"log/slog"

	"github.com/simonhull/musicxml/internal/diag"
	"github.com/simonhull/musicxml/internal/layout"
	"github.com/simonhull/musicxml/internal/model"
)

// DurationCheck selects how a measure whose notes do not fill its time
// signature is treated.
type DurationCheck int

const (
	// DurationCheckOff skips the reconciliation.
	DurationCheckOff DurationCheck = iota
	// DurationCheckWarn records a measure_duration_warning.
	DurationCheckWarn
	// DurationCheckStrict fails with measure_duration_validation.
	DurationCheckStrict
)

func (d DurationCheck) String() string {
	switch d {
	case DurationCheckOff:
		return "off"
	case DurationCheckWarn:
		return "warn"
	case DurationCheckStrict:
		return "strict"
	default:
		return fmt.Sprintf("DurationCheck(%d)", int(d))
	}
}

// ParseDurationCheck maps "off", "warn" or "strict" to a DurationCheck.
func ParseDurationCheck(s string) (DurationCheck, error) {
	switch s {
	case "", "off":
		return DurationCheckOff, nil
	case "warn":
		return DurationCheckWarn, nil
	case "strict":
		return DurationCheckStrict, nil
	default:
		return DurationCheckOff, fmt.Errorf("invalid duration check: %s", s)
	}
}

// State is the musical context in effect at a point of a part. A zero
// Divisions and nil Key/Time mean "never declared".
type State struct {
	Divisions int
	Key       *model.KeySignature
	Time      *model.TimeSignature
}

// Options controls an assembly run.
type Options struct {
	Diag          *diag.Collector // nil means a private collector
	Layout        layout.Parser   // nil means layout.Raw
	Logger        *slog.Logger    // nil disables logging
	Seed          State           // context each part starts from
	DurationCheck DurationCheck
}

// normalized fills in defaults for unset fields.
func (o Options) normalized() Options {
	if o.Diag == nil {
		o.Diag = diag.New(nil)
	}
	if o.Layout == nil {
		o.Layout = layout.Raw{}
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
