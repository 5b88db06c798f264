// Package xmltree provides the in-memory XML tree walked by the assemblers.
//
// A strict encoding/xml token pass checks well-formedness and records the
// line of every start element; xmlquery then builds the tree. Both passes
// see elements in the same document order.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html/charset"

	"github.com/simonhull/musicxml/internal/types"
)

// Document is a parsed XML document.
type Document struct {
	root  *xmlquery.Node
	lines map[*xmlquery.Node]int
}

// Node is an element of a Document.
type Node struct {
	node *xmlquery.Node
	doc  *Document
}

// Parse parses data. Well-formedness failures are returned as
// *types.ParseError; the xmlquery and encoding/xml error types never escape.
func Parse(data []byte) (*Document, error) {
	lines, err := startLines(data)
	if err != nil {
		return nil, &types.ParseError{Err: errors.New(err.Error())}
	}
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &types.ParseError{Err: errors.New(err.Error())}
	}

	doc := &Document{root: root}
	if doc.Root() == nil {
		return nil, &types.ParseError{Err: errors.New("document has no root element")}
	}
	doc.lines = index(root, lines)
	return doc, nil
}

// startLines runs a strict token pass and returns the line of every start
// element in document order.
func startLines(data []byte) ([]int, error) {
	var lines []int
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		if _, ok := tok.(xml.StartElement); ok {
			line, _ := dec.InputPos()
			lines = append(lines, line)
		}
	}
}

// index pairs the n-th start line with the n-th element of the tree in
// preorder.
func index(root *xmlquery.Node, lines []int) map[*xmlquery.Node]int {
	out := make(map[*xmlquery.Node]int, len(lines))
	i := 0
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != xmlquery.ElementNode {
				continue
			}
			if i < len(lines) {
				out[c] = lines[i]
			}
			i++
			walk(c)
		}
	}
	walk(root)
	return out
}

// Root returns the document element.
func (d *Document) Root() *Node {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return &Node{node: c, doc: d}
		}
	}
	return nil
}

func (d *Document) wrap(n *xmlquery.Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{node: n, doc: d}
}

// Name returns the local element name.
func (n *Node) Name() string {
	return n.node.Data
}

// Line returns the 1-based source line of the start tag, or 0 if unknown.
func (n *Node) Line() int {
	return n.doc.lines[n.node]
}

// Attr returns the value of an attribute, or "" when absent.
func (n *Node) Attr(name string) string {
	v, _ := n.LookupAttr(name)
	return v
}

// LookupAttr returns the value of an attribute and whether it is present.
func (n *Node) LookupAttr(name string) (string, bool) {
	for _, a := range n.node.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns all attributes in document order.
func (n *Node) Attrs() []types.Attr {
	out := make([]types.Attr, 0, len(n.node.Attr))
	for _, a := range n.node.Attr {
		out = append(out, types.Attr{Key: a.Name.Local, Value: a.Value})
	}
	return out
}

// Text returns the trimmed text content of the node and its descendants.
func (n *Node) Text() string {
	return strings.TrimSpace(n.node.InnerText())
}

// Children returns the element children in document order.
func (n *Node) Children() []*Node {
	var out []*Node
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			out = append(out, n.doc.wrap(c))
		}
	}
	return out
}

// ChildrenNamed returns the element children with the given name.
func (n *Node) ChildrenNamed(name string) []*Node {
	var out []*Node
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, n.doc.wrap(c))
		}
	}
	return out
}

// Child returns the first element child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for c := n.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return n.doc.wrap(c)
		}
	}
	return nil
}

// Has reports whether an element child with the given name exists.
func (n *Node) Has(name string) bool {
	return n.Child(name) != nil
}

// ChildText returns the trimmed text of the first child with the given name.
func (n *Node) ChildText(name string) (string, bool) {
	c := n.Child(name)
	if c == nil {
		return "", false
	}
	return c.Text(), true
}

// Query returns the nodes selected by a compiled XPath expression relative
// to n.
func (n *Node) Query(expr *xpath.Expr) []*Node {
	var out []*Node
	for _, m := range xmlquery.QuerySelectorAll(n.node, expr) {
		if m.Type == xmlquery.ElementNode {
			out = append(out, n.doc.wrap(m))
		}
	}
	return out
}

// QueryOne returns the first element selected by expr, or nil.
func (n *Node) QueryOne(expr *xpath.Expr) *Node {
	m := xmlquery.QuerySelector(n.node, expr)
	if m == nil || m.Type != xmlquery.ElementNode {
		return nil
	}
	return n.doc.wrap(m)
}

// OutputXML returns the serialized sub-tree rooted at n.
func (n *Node) OutputXML() string {
	return n.node.OutputXML(true)
}

// WriteXML writes the serialized sub-tree rooted at n to w.
func (n *Node) WriteXML(w io.Writer) error {
	_, err := io.WriteString(w, n.OutputXML())
	return err
}
