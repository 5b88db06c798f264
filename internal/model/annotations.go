package model

// Beam is one reconstructed beam group.
type Beam struct {
	Number  int
	Type    BeamType // opening type of the group
	Measure string
	Notes   []int // indices into Measure.Notes
}

// Repeat is a <repeat> inside a barline.
type Repeat struct {
	Direction RepeatDirection
	Times     *int
}

// Ending is a volta bracket.
type Ending struct {
	Number string // "1", "1, 2", ...
	Type   EndingType
	Text   string
}

// Barline is a <barline> with its optional repeat and ending.
type Barline struct {
	Location BarLocation
	Style    BarStyle
	Repeat   *Repeat
	Ending   *Ending
}

// DirectionType is one modelled child of <direction-type>.
type DirectionType struct {
	Kind     DirectionKind
	Text     string   // words only
	Dynamics []string // dynamics only, e.g. "p", "sfz"
}

// Direction is a <direction> with at least one modelled direction type.
type Direction struct {
	Placement string
	Voice     string
	Staff     int
	Types     []DirectionType
}

// Layout is an opaque value produced by the layout collaborator.
type Layout struct {
	Kind  LayoutKind
	Value any
}

// Print is a <print> element. Its layout children are opaque.
type Print struct {
	NewSystem  bool
	NewPage    bool
	PageNumber string
	Layouts    []Layout
}
