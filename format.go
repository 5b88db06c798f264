package musicxml

import (
	"github.com/simonhull/musicxml/internal/types"
)

// Format is an alias to types.Format.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatXML     = types.FormatXML
	FormatMXL     = types.FormatMXL
)

// DetectFormat is a wrapper around types.DetectFormat.
// Input starting with the ZIP signature is MXL; anything else is XML.
func DetectFormat(data []byte, path string) (Format, error) {
	return types.DetectFormat(data, path)
}
