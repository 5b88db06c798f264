package types

import "bytes"

// Format identifies how a MusicXML document is packaged.
type Format int

const (
	// FormatUnknown represents input that could not be classified.
	FormatUnknown Format = iota
	// FormatXML represents an uncompressed MusicXML document.
	FormatXML
	// FormatMXL represents a compressed MusicXML (ZIP) container.
	FormatMXL
)

// zipMagic is the ZIP local-file-header signature ("PK\x03\x04").
var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

func (f Format) String() string {
	switch f {
	case FormatXML:
		return "MusicXML"
	case FormatMXL:
		return "MXL"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the format name.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatXML:
		return []string{".musicxml", ".xml"}
	case FormatMXL:
		return []string{".mxl"}
	default:
		return nil
	}
}

// DetectFormat determines the packaging by examining the first four bytes.
//
// Only the ZIP signature is checked; anything else is treated as XML text
// and left for the XML parser to accept or reject.
func DetectFormat(data []byte, path string) (Format, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "empty input",
			Err:    ErrUnrecognizedRoot,
		}
	}

	if len(data) >= len(zipMagic) && bytes.Equal(data[:len(zipMagic)], zipMagic) {
		return FormatMXL, nil
	}

	return FormatXML, nil
}
