package types

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every typed error below unwraps to one of these so callers
// can branch with errors.Is without knowing the concrete type.
var (
	// ErrStructural indicates a required element or attribute is missing.
	ErrStructural = errors.New("structural error")
	// ErrValidation indicates a value is present but outside its domain.
	ErrValidation = errors.New("validation error")
	// ErrMalformedXML indicates the document is not well-formed XML.
	ErrMalformedXML = errors.New("malformed xml")
	// ErrTimewiseUnsupported indicates a score-timewise document.
	ErrTimewiseUnsupported = errors.New("score-timewise is not implemented")
	// ErrUnrecognizedRoot indicates the root element is not a MusicXML score.
	ErrUnrecognizedRoot = errors.New("unrecognized root element")
	// ErrNoMusicXML indicates an archive holds no MusicXML payload.
	ErrNoMusicXML = errors.New("no MusicXML content found")
	// ErrStrict indicates a warning was promoted to a fatal error.
	ErrStrict = errors.New("strict parsing failed")
	// ErrTooLarge indicates the input exceeds the configured size limit.
	ErrTooLarge = errors.New("input too large")
)

// StructuralError is returned when a required element or attribute is
// missing or unusable. It always aborts the parse.
type StructuralError struct {
	Path     string // element path, e.g. "measure/backup/duration"
	Message  string
	Location Location
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error at %s%s: %s", e.Path, e.Location.suffix(), e.Message)
}

func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// ValidationError is a rule failure from the validation engine.
type ValidationError struct {
	Rule     string
	Message  string
	Location Location
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s%s", e.Rule, e.Message, e.Location.suffix())
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// UnsupportedFormatError is returned for documents that are recognized but
// cannot be parsed, or not recognized at all.
type UnsupportedFormatError struct {
	Path   string
	Reason string
	Err    error // ErrTimewiseUnsupported or ErrUnrecognizedRoot
}

func (e *UnsupportedFormatError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("unsupported format: %s", e.Reason)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Err
}

// ParseError wraps an XML well-formedness failure. The underlying decoder
// error is kept in Err for its message but callers only ever see this type.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: parse musicxml: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("parse musicxml: %v", e.Err)
}

// Unwrap returns ErrMalformedXML rather than the decoder error so the XML
// library's error types do not leak into the public API.
func (e *ParseError) Unwrap() error {
	return ErrMalformedXML
}

// ArchiveError is returned when an MXL container cannot be read.
type ArchiveError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ArchiveError) Error() string {
	msg := "archive error: " + e.Reason
	if e.Path != "" {
		msg = e.Path + ": " + msg
	}
	if e.Err != nil && !errors.Is(e.Err, ErrNoMusicXML) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// StrictError is returned by strict parsing when a warning is recorded.
type StrictError struct {
	Diagnostic Diagnostic
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("strict parsing failed: %s", e.Diagnostic)
}

func (e *StrictError) Unwrap() error {
	return ErrStrict
}
