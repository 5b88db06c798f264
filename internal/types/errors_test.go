package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrors_Error(t *testing.T) {
	loc := Location{Line: 12, Part: "P1", Measure: "3"}

	tests := []struct {
		name     string
		err      error
		contains []string
	}{
		{
			name:     "structural",
			err:      &StructuralError{Path: "measure/backup/duration", Message: "missing duration", Location: loc},
			contains: []string{"structural error", "measure/backup/duration", "missing duration", "part P1", "measure 3", "line 12"},
		},
		{
			name:     "validation",
			err:      &ValidationError{Rule: RuleDivisionsPositive, Message: "divisions must be positive, got 0", Location: loc},
			contains: []string{"[divisions_positive_validation]", "got 0", "part P1"},
		},
		{
			name:     "unsupported",
			err:      &UnsupportedFormatError{Path: "song.xml", Reason: "score-timewise", Err: ErrTimewiseUnsupported},
			contains: []string{"song.xml", "unsupported format", "score-timewise"},
		},
		{
			name:     "parse",
			err:      &ParseError{Path: "bad.xml", Err: errors.New("unexpected EOF")},
			contains: []string{"bad.xml", "parse musicxml", "unexpected EOF"},
		},
		{
			name:     "archive",
			err:      &ArchiveError{Path: "x.mxl", Reason: "no MusicXML content found", Err: ErrNoMusicXML},
			contains: []string{"x.mxl", "archive error", "no MusicXML content found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestErrors_Unwrap(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"structural", &StructuralError{}, ErrStructural},
		{"validation", &ValidationError{}, ErrValidation},
		{"timewise", &UnsupportedFormatError{Err: ErrTimewiseUnsupported}, ErrTimewiseUnsupported},
		{"root", &UnsupportedFormatError{Err: ErrUnrecognizedRoot}, ErrUnrecognizedRoot},
		{"parse", &ParseError{Err: errors.New("boom")}, ErrMalformedXML},
		{"archive", &ArchiveError{Err: ErrNoMusicXML}, ErrNoMusicXML},
		{"strict", &StrictError{}, ErrStrict},
		{"wrapped", fmt.Errorf("part P1: %w", &ValidationError{}), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.target)
			}
		})
	}
}

func TestParseError_HidesDecoderError(t *testing.T) {
	inner := errors.New("XML syntax error on line 3")
	err := &ParseError{Err: inner}
	if errors.Is(err, inner) {
		t.Error("ParseError should not unwrap to the decoder error")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		loc  Location
		want string
	}{
		{Location{}, ""},
		{Location{Line: 4}, "line 4"},
		{Location{Part: "P2", Measure: "0"}, "part P2, measure 0"},
		{Location{Part: "P1", Line: 9}.With("element", "note"), "part P1, line 9, element=note"},
	}

	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("Location.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLocation_WithDoesNotAlias(t *testing.T) {
	base := Location{Extra: make([]Attr, 0, 4)}
	a := base.With("k", "a")
	b := base.With("k", "b")
	if a.Extra[0].Value != "a" || b.Extra[0].Value != "b" {
		t.Errorf("With aliased backing array: a=%v b=%v", a.Extra, b.Extra)
	}
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity: SeverityWarning,
		Rule:     RuleBackupUnsupported,
		Message:  "backup is not modelled",
		Location: Location{Part: "P1", Measure: "2"},
	}
	want := "warning [backup_unsupported_warning] backup is not modelled (part P1, measure 2)"
	if got := d.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
