package types

import (
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// SeverityWarning is a recoverable or advisory issue; parsing continues.
	SeverityWarning Severity = iota
	// SeverityFatal is an issue that aborted the parse.
	SeverityFatal
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText encodes the severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Attr is a free-form key/value pair attached to a Location.
type Attr struct {
	Key   string
	Value string
}

// Location identifies where in the document an issue was found.
type Location struct {
	Line    int    // 1-based, 0 when unknown
	Part    string // part id, empty outside a part
	Measure string // measure number, empty outside a measure
	Extra   []Attr
}

// With returns a copy of l with an extra attribute appended.
func (l Location) With(key, value string) Location {
	extra := make([]Attr, len(l.Extra), len(l.Extra)+1)
	copy(extra, l.Extra)
	l.Extra = append(extra, Attr{Key: key, Value: value})
	return l
}

// AtLine returns a copy of l with Line replaced.
func (l Location) AtLine(line int) Location {
	l.Line = line
	return l
}

// String renders the location as "part P1, measure 3, line 42".
func (l Location) String() string {
	var parts []string
	if l.Part != "" {
		parts = append(parts, "part "+l.Part)
	}
	if l.Measure != "" {
		parts = append(parts, "measure "+l.Measure)
	}
	if l.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", l.Line))
	}
	for _, a := range l.Extra {
		parts = append(parts, a.Key+"="+a.Value)
	}
	return strings.Join(parts, ", ")
}

func (l Location) suffix() string {
	s := l.String()
	if s == "" {
		return ""
	}
	return " (" + s + ")"
}

// Diagnostic represents an issue encountered during parsing.
//
// Warnings are collected and parsing continues; a fatal diagnostic mirrors
// the error that stopped the parse.
type Diagnostic struct {
	Severity Severity
	Rule     string
	Message  string
	Location Location
}

// String returns a human-readable diagnostic message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s [%s] %s%s", d.Severity, d.Rule, d.Message, d.Location.suffix())
}
