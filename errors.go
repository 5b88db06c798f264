package musicxml

import (
	"github.com/simonhull/musicxml/internal/types"
)

// StructuralError is an alias to types.StructuralError.
// A required element or attribute is missing; the parse is aborted.
type StructuralError = types.StructuralError

// ValidationError is an alias to types.ValidationError.
// A value is outside its domain; Rule names the failing check.
type ValidationError = types.ValidationError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
type UnsupportedFormatError = types.UnsupportedFormatError

// ParseError is an alias to types.ParseError.
// It wraps XML well-formedness failures.
type ParseError = types.ParseError

// ArchiveError is an alias to types.ArchiveError.
type ArchiveError = types.ArchiveError

// StrictError is an alias to types.StrictError.
type StrictError = types.StrictError

// Sentinel errors, for use with errors.Is.
var (
	ErrStructural          = types.ErrStructural
	ErrValidation          = types.ErrValidation
	ErrMalformedXML        = types.ErrMalformedXML
	ErrTimewiseUnsupported = types.ErrTimewiseUnsupported
	ErrUnrecognizedRoot    = types.ErrUnrecognizedRoot
	ErrNoMusicXML          = types.ErrNoMusicXML
	ErrStrict              = types.ErrStrict
	ErrTooLarge            = types.ErrTooLarge
)

// Diagnostic is an alias to types.Diagnostic.
type Diagnostic = types.Diagnostic

// Severity is an alias to types.Severity.
type Severity = types.Severity

// Diagnostic severities.
const (
	SeverityWarning = types.SeverityWarning
	SeverityFatal   = types.SeverityFatal
)

// Location is an alias to types.Location.
type Location = types.Location

// Attr is an alias to types.Attr.
type Attr = types.Attr

// Rule ids reported in ValidationError.Rule and Diagnostic.Rule.
const (
	RulePitchStep               = types.RulePitchStep
	RulePitchOctave             = types.RulePitchOctave
	RulePitchAlter              = types.RulePitchAlter
	RuleDurationPositive        = types.RuleDurationPositive
	RuleDivisionsPositive       = types.RuleDivisionsPositive
	RuleKeyFifths               = types.RuleKeyFifths
	RuleKeyMode                 = types.RuleKeyMode
	RuleTimeBeats               = types.RuleTimeBeats
	RuleTimeBeatType            = types.RuleTimeBeatType
	RuleRestNoPitch             = types.RuleRestNoPitch
	RulePitchRequired           = types.RulePitchRequired
	RuleBeamNumber              = types.RuleBeamNumber
	RuleBeamType                = types.RuleBeamType
	RuleBeamNoteCount           = types.RuleBeamNoteCount
	RuleTimeModActual           = types.RuleTimeModActual
	RuleTimeModNormal           = types.RuleTimeModNormal
	RuleTimeModDots             = types.RuleTimeModDots
	RuleMeasureNumber           = types.RuleMeasureNumber
	RuleMeasureDuration         = types.RuleMeasureDuration
	RulePartReference           = types.RulePartReference
	RulePartIDUnique            = types.RulePartIDUnique
	RulePartListMissing         = types.RulePartListMissing
	RulePartGroupUnsupported    = types.RulePartGroupUnsupported
	RuleBackupUnsupported       = types.RuleBackupUnsupported
	RuleForwardUnsupported      = types.RuleForwardUnsupported
	RuleEndingIncomplete        = types.RuleEndingIncomplete
	RuleEmptyWords              = types.RuleEmptyWords
	RuleOrphanedTie             = types.RuleOrphanedTie
	RuleUnknownVariant          = types.RuleUnknownVariant
	RuleNoteSkipped             = types.RuleNoteSkipped
	RuleMeasureDurationAdvisory = types.RuleMeasureDurationAdvisory
	RuleSenzaMisura             = types.RuleSenzaMisura
	RulePrintDuplicate          = types.RulePrintDuplicate
	RuleArchiveContainer        = types.RuleArchiveContainer
	RuleLayout                  = types.RuleLayout
	RuleStructural              = types.RuleStructural
	RuleMalformedXML            = types.RuleMalformedXML
	RuleRootElement             = types.RuleRootElement
)
