package diag

import (
	"errors"

	"github.com/simonhull/musicxml/internal/types"
)

// describe extracts the location and rule id from a typed parse error.
func describe(err error) (types.Location, string, bool) {
	var ve *types.ValidationError
	if errors.As(err, &ve) {
		return ve.Location, ve.Rule, true
	}
	var se *types.StructuralError
	if errors.As(err, &se) {
		return se.Location, types.RuleStructural, true
	}
	var pe *types.ParseError
	if errors.As(err, &pe) {
		return types.Location{}, types.RuleMalformedXML, true
	}
	var st *types.StrictError
	if errors.As(err, &st) {
		return st.Diagnostic.Location, st.Diagnostic.Rule, true
	}
	var ue *types.UnsupportedFormatError
	if errors.As(err, &ue) {
		return types.Location{}, types.RuleRootElement, true
	}
	return types.Location{}, "", false
}
