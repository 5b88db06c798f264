package model

// vocabulary maps the MusicXML spelling of a closed enumeration to its Go
// value. Index 0 names the zero value and is never matched by parse.
type vocabulary[T ~int] []string

func (v vocabulary[T]) name(value T) string {
	if int(value) <= 0 || int(value) >= len(v) {
		return v[0]
	}
	return v[value]
}

func (v vocabulary[T]) parse(s string) (T, bool) {
	for i := 1; i < len(v); i++ {
		if v[i] == s {
			return T(i), true
		}
	}
	return 0, false
}

// NoteType is the graphic note value from <type>.
type NoteType int

const (
	NoteTypeNone NoteType = iota
	NoteType1024th
	NoteType512th
	NoteType256th
	NoteType128th
	NoteType64th
	NoteType32nd
	NoteType16th
	NoteTypeEighth
	NoteTypeQuarter
	NoteTypeHalf
	NoteTypeWhole
	NoteTypeBreve
	NoteTypeLong
	NoteTypeMaxima
	NoteTypeUnknown
)

var noteTypes = vocabulary[NoteType]{
	"", "1024th", "512th", "256th", "128th", "64th", "32nd", "16th",
	"eighth", "quarter", "half", "whole", "breve", "long", "maxima", "unknown",
}

func (t NoteType) String() string { return noteTypes.name(t) }

// MarshalText encodes the MusicXML spelling.
func (t NoteType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseNoteType returns NoteTypeUnknown and false for unrecognized text.
func ParseNoteType(s string) (NoteType, bool) {
	if t, ok := noteTypes.parse(s); ok && t != NoteTypeUnknown {
		return t, true
	}
	return NoteTypeUnknown, false
}

// BeamType is the value of a <beam> element.
type BeamType int

const (
	BeamUnknown BeamType = iota
	BeamBegin
	BeamContinue
	BeamEnd
	BeamForwardHook
	BeamBackwardHook
)

var beamTypes = vocabulary[BeamType]{"unknown", "begin", "continue", "end", "forward hook", "backward hook"}

func (t BeamType) String() string { return beamTypes.name(t) }

// MarshalText encodes the MusicXML spelling.
func (t BeamType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// Hook reports whether the beam is a single-note hook.
func (t BeamType) Hook() bool {
	return t == BeamForwardHook || t == BeamBackwardHook
}

// ParseBeamType maps beam element text to a BeamType.
func ParseBeamType(s string) (BeamType, bool) { return beamTypes.parse(s) }

// BarStyle is the value of <bar-style>.
type BarStyle int

const (
	BarStyleUnknown BarStyle = iota
	BarStyleRegular
	BarStyleDotted
	BarStyleDashed
	BarStyleHeavy
	BarStyleLightLight
	BarStyleLightHeavy
	BarStyleHeavyLight
	BarStyleHeavyHeavy
	BarStyleTick
	BarStyleShort
	BarStyleNone
)

var barStyles = vocabulary[BarStyle]{
	"unknown", "regular", "dotted", "dashed", "heavy", "light-light",
	"light-heavy", "heavy-light", "heavy-heavy", "tick", "short", "none",
}

func (s BarStyle) String() string { return barStyles.name(s) }

// MarshalText encodes the MusicXML spelling.
func (s BarStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseBarStyle maps <bar-style> text to a BarStyle.
func ParseBarStyle(s string) (BarStyle, bool) { return barStyles.parse(s) }

// BarLocation is the location attribute of <barline>.
type BarLocation int

const (
	BarLocationUnknown BarLocation = iota
	BarLocationRight
	BarLocationLeft
	BarLocationMiddle
)

var barLocations = vocabulary[BarLocation]{"unknown", "right", "left", "middle"}

func (l BarLocation) String() string { return barLocations.name(l) }

// MarshalText encodes the MusicXML spelling.
func (l BarLocation) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// ParseBarLocation maps the location attribute to a BarLocation.
func ParseBarLocation(s string) (BarLocation, bool) { return barLocations.parse(s) }

// RepeatDirection is the direction attribute of <repeat>.
type RepeatDirection int

const (
	RepeatUnknown RepeatDirection = iota
	RepeatForward
	RepeatBackward
)

var repeatDirections = vocabulary[RepeatDirection]{"unknown", "forward", "backward"}

func (d RepeatDirection) String() string { return repeatDirections.name(d) }

// MarshalText encodes the MusicXML spelling.
func (d RepeatDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// ParseRepeatDirection maps the direction attribute to a RepeatDirection.
func ParseRepeatDirection(s string) (RepeatDirection, bool) { return repeatDirections.parse(s) }

// EndingType is the type attribute of <ending>.
type EndingType int

const (
	EndingUnknown EndingType = iota
	EndingStart
	EndingStop
	EndingDiscontinue
)

var endingTypes = vocabulary[EndingType]{"unknown", "start", "stop", "discontinue"}

func (t EndingType) String() string { return endingTypes.name(t) }

// MarshalText encodes the MusicXML spelling.
func (t EndingType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseEndingType maps the type attribute to an EndingType.
func ParseEndingType(s string) (EndingType, bool) { return endingTypes.parse(s) }

// TieType covers both <tie> and <tied> type values.
type TieType int

const (
	TieUnknown TieType = iota
	TieStart
	TieStop
	TieContinue
	TieLetRing
)

var tieTypes = vocabulary[TieType]{"unknown", "start", "stop", "continue", "let-ring"}

func (t TieType) String() string { return tieTypes.name(t) }

// MarshalText encodes the MusicXML spelling.
func (t TieType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseTieType maps a tie type attribute to a TieType.
func ParseTieType(s string) (TieType, bool) { return tieTypes.parse(s) }

// SlurType is the type attribute of <slur>.
type SlurType int

const (
	SlurUnknown SlurType = iota
	SlurStart
	SlurStop
	SlurContinue
)

var slurTypes = vocabulary[SlurType]{"unknown", "start", "stop", "continue"}

func (t SlurType) String() string { return slurTypes.name(t) }

// MarshalText encodes the MusicXML spelling.
func (t SlurType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseSlurType maps the type attribute to a SlurType.
func ParseSlurType(s string) (SlurType, bool) { return slurTypes.parse(s) }

// ArticulationKind is the element name of a child of <articulations>.
type ArticulationKind int

const (
	ArticulationUnknown ArticulationKind = iota
	ArticulationAccent
	ArticulationStrongAccent
	ArticulationStaccato
	ArticulationTenuto
	ArticulationDetachedLegato
	ArticulationStaccatissimo
	ArticulationSpiccato
	ArticulationScoop
	ArticulationPlop
	ArticulationDoit
	ArticulationFalloff
	ArticulationBreathMark
	ArticulationCaesura
	ArticulationStress
	ArticulationUnstress
	ArticulationSoftAccent
)

var articulationKinds = vocabulary[ArticulationKind]{
	"unknown", "accent", "strong-accent", "staccato", "tenuto", "detached-legato",
	"staccatissimo", "spiccato", "scoop", "plop", "doit", "falloff", "breath-mark",
	"caesura", "stress", "unstress", "soft-accent",
}

func (k ArticulationKind) String() string { return articulationKinds.name(k) }

// MarshalText encodes the MusicXML spelling.
func (k ArticulationKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseArticulationKind maps an element name to an ArticulationKind.
func ParseArticulationKind(s string) (ArticulationKind, bool) { return articulationKinds.parse(s) }

// ClefSign is the value of <clef>/<sign>.
type ClefSign int

const (
	ClefUnknown ClefSign = iota
	ClefG
	ClefF
	ClefC
	ClefPercussion
	ClefTAB
	ClefJianpu
	ClefNone
)

var clefSigns = vocabulary[ClefSign]{"unknown", "G", "F", "C", "percussion", "TAB", "jianpu", "none"}

func (s ClefSign) String() string { return clefSigns.name(s) }

// MarshalText encodes the MusicXML spelling.
func (s ClefSign) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseClefSign maps <sign> text to a ClefSign.
func ParseClefSign(s string) (ClefSign, bool) { return clefSigns.parse(s) }

// TimeSymbol is the symbol attribute of <time>. The zero value means the
// attribute was not declared.
type TimeSymbol int

const (
	TimeSymbolNone TimeSymbol = iota
	TimeSymbolNormal
	TimeSymbolCommon
	TimeSymbolCut
	TimeSymbolSingleNumber
	TimeSymbolNote
	TimeSymbolDottedNote
	TimeSymbolUnknown
)

var timeSymbols = vocabulary[TimeSymbol]{"", "normal", "common", "cut", "single-number", "note", "dotted-note", "unknown"}

func (s TimeSymbol) String() string { return timeSymbols.name(s) }

// MarshalText encodes the MusicXML spelling.
func (s TimeSymbol) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// ParseTimeSymbol returns TimeSymbolUnknown and false for unrecognized text.
func ParseTimeSymbol(s string) (TimeSymbol, bool) {
	if v, ok := timeSymbols.parse(s); ok && v != TimeSymbolUnknown {
		return v, true
	}
	return TimeSymbolUnknown, false
}

// DirectionKind is the modelled subset of <direction-type> children.
type DirectionKind int

const (
	DirectionUnknown DirectionKind = iota
	DirectionWords
	DirectionSegno
	DirectionCoda
	DirectionDynamics
)

var directionKinds = vocabulary[DirectionKind]{"unknown", "words", "segno", "coda", "dynamics"}

func (k DirectionKind) String() string { return directionKinds.name(k) }

// MarshalText encodes the MusicXML spelling.
func (k DirectionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseDirectionKind maps a direction-type child name to a DirectionKind.
func ParseDirectionKind(s string) (DirectionKind, bool) { return directionKinds.parse(s) }

// LayoutKind names a sub-tree handed to the layout collaborator.
type LayoutKind int

const (
	LayoutUnknown LayoutKind = iota
	LayoutScaling
	LayoutPage
	LayoutSystem
	LayoutStaff
	LayoutAppearance
)

var layoutKinds = vocabulary[LayoutKind]{"unknown", "scaling", "page-layout", "system-layout", "staff-layout", "appearance"}

func (k LayoutKind) String() string { return layoutKinds.name(k) }

// MarshalText encodes the MusicXML spelling.
func (k LayoutKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseLayoutKind maps an element name to a LayoutKind.
func ParseLayoutKind(s string) (LayoutKind, bool) { return layoutKinds.parse(s) }
