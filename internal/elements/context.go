// Package elements maps individual MusicXML elements to model values.
//
// Parsers are stateless. Each takes the element, a Context describing where
// it sits in the document, and reports recoverable problems to the
// Context's collector. Missing required children and unparsable numbers are
// returned as *types.StructuralError; out-of-domain values surface as the
// *types.ValidationError of the failing rule.
package elements

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/simonhull/musicxml/internal/diag"
	"github.com/simonhull/musicxml/internal/layout"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Context is the position and state shared with a leaf parser.
type Context struct {
	Loc       types.Location // part and measure; the line is taken from the element
	Diag      *diag.Collector
	Layout    layout.Parser
	Divisions int // divisions in effect, 0 when unset
}

func (c Context) at(n *xmltree.Node) types.Location {
	return c.Loc.AtLine(n.Line())
}

func (c Context) warn(n *xmltree.Node, rule, format string, args ...any) {
	if c.Diag != nil {
		c.Diag.Warn(rule, c.at(n), format, args...)
	}
}

func (c Context) missing(n *xmltree.Node, path string) error {
	return &types.StructuralError{Path: path, Message: "required element or attribute missing", Location: c.at(n)}
}

func (c Context) invalid(n *xmltree.Node, path, value, want string) error {
	return &types.StructuralError{Path: path, Message: fmt.Sprintf("%q is not %s", value, want), Location: c.at(n)}
}

// variant resolves text against a closed vocabulary. Unrecognized text is
// reported and the enumeration's unknown value is returned.
func variant[T any](c Context, n *xmltree.Node, what, text string, parse func(string) (T, bool)) (T, bool) {
	v, ok := parse(text)
	if !ok {
		c.warn(n, types.RuleUnknownVariant, "unknown %s %q", what, text)
	}
	return v, ok
}

// integer parses the trimmed text of n.
func (c Context) integer(n *xmltree.Node, path string) (int, error) {
	text := n.Text()
	v, err := strconv.Atoi(text)
	if err != nil {
		return 0, c.invalid(n, path, text, "an integer")
	}
	return v, nil
}

// childInt parses a required integer child.
func (c Context) childInt(n *xmltree.Node, name, path string) (int, error) {
	child := n.Child(name)
	if child == nil {
		return 0, c.missing(n, path)
	}
	return c.integer(child, path)
}

// optChildInt parses an optional integer child, returning def when absent.
func (c Context) optChildInt(n *xmltree.Node, name, path string, def int) (int, error) {
	child := n.Child(name)
	if child == nil {
		return def, nil
	}
	return c.integer(child, path)
}

// attrInt parses an optional integer attribute, returning def when absent.
func (c Context) attrInt(n *xmltree.Node, name, path string, def int) (int, error) {
	raw, ok := n.LookupAttr(name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, c.invalid(n, path, raw, "an integer")
	}
	return v, nil
}

// attrFloat parses an optional decimal attribute.
func (c Context) attrFloat(n *xmltree.Node, name, path string) (*float64, error) {
	raw, ok := n.LookupAttr(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, c.invalid(n, path, raw, "a decimal")
	}
	return &v, nil
}

func yes(n *xmltree.Node, attr string) bool {
	return n.Attr(attr) == "yes"
}
