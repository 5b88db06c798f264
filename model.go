package musicxml

import (
	"github.com/simonhull/musicxml/internal/layout"
	"github.com/simonhull/musicxml/internal/model"
)

// Score model. These are aliases to the types in internal/model so the
// tree returned by Parse can be walked without importing internal packages.
type (
	Score            = model.Score
	ScorePart        = model.ScorePart
	Work             = model.Work
	Identification   = model.Identification
	Creator          = model.Creator
	Encoding         = model.Encoding
	Part             = model.Part
	Measure          = model.Measure
	Note             = model.Note
	NotePosition     = model.NotePosition
	Pitch            = model.Pitch
	Unpitched        = model.Unpitched
	Duration         = model.Duration
	TimeModification = model.TimeModification
	Notations        = model.Notations
	Slur             = model.Slur
	Tie              = model.Tie
	Articulation     = model.Articulation
	KeySignature     = model.KeySignature
	TimeSignature    = model.TimeSignature
	Clef             = model.Clef
	Beam             = model.Beam
	Barline          = model.Barline
	Repeat           = model.Repeat
	Ending           = model.Ending
	Direction        = model.Direction
	DirectionType    = model.DirectionType
	Print            = model.Print
	Layout           = model.Layout
)

// Closed enumerations of the model.
type (
	NoteType         = model.NoteType
	BeamType         = model.BeamType
	BarStyle         = model.BarStyle
	BarLocation      = model.BarLocation
	RepeatDirection  = model.RepeatDirection
	EndingType       = model.EndingType
	TieType          = model.TieType
	SlurType         = model.SlurType
	ArticulationKind = model.ArticulationKind
	ClefSign         = model.ClefSign
	TimeSymbol       = model.TimeSymbol
	DirectionKind    = model.DirectionKind
	LayoutKind       = model.LayoutKind
)

// Beam types.
const (
	BeamUnknown      = model.BeamUnknown
	BeamBegin        = model.BeamBegin
	BeamContinue     = model.BeamContinue
	BeamEnd          = model.BeamEnd
	BeamForwardHook  = model.BeamForwardHook
	BeamBackwardHook = model.BeamBackwardHook
)

// Layout kinds handed to a LayoutParser.
const (
	LayoutScaling    = model.LayoutScaling
	LayoutPage       = model.LayoutPage
	LayoutSystem     = model.LayoutSystem
	LayoutStaff      = model.LayoutStaff
	LayoutAppearance = model.LayoutAppearance
)

// UnknownPartName is the name given to parts of a score without a part-list.
const UnknownPartName = model.UnknownPartName

// LayoutParser interprets presentational sub-trees. See WithLayoutParser.
type LayoutParser = layout.Parser

// LayoutParserFunc adapts a function to LayoutParser.
type LayoutParserFunc = layout.ParserFunc

// RawElement is the layout sub-tree given to a LayoutParser.
type RawElement = layout.RawElement
