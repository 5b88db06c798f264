// Package layout defines the collaborator that interprets presentational
// sub-trees (scaling, page/system/staff layout, appearance). The parser
// never inspects the values it returns.
package layout

import (
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
)

// RawElement is a layout sub-tree as handed to a Parser.
type RawElement struct {
	Name  string
	Attrs []types.Attr
	XML   string // serialized sub-tree including the element itself
}

// Parser turns a layout sub-tree into an opaque value.
type Parser interface {
	ParseLayout(kind model.LayoutKind, elem RawElement) (any, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(kind model.LayoutKind, elem RawElement) (any, error)

// ParseLayout calls f.
func (f ParserFunc) ParseLayout(kind model.LayoutKind, elem RawElement) (any, error) {
	return f(kind, elem)
}

// Raw is the default Parser. It keeps the RawElement unchanged.
type Raw struct{}

// ParseLayout returns elem.
func (Raw) ParseLayout(_ model.LayoutKind, elem RawElement) (any, error) {
	return elem, nil
}
