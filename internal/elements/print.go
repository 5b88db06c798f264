package elements

import (
	"github.com/simonhull/musicxml/internal/layout"
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Print parses a <print>. Layout children go to the layout collaborator.
func Print(n *xmltree.Node, c Context) model.Print {
	return model.Print{
		NewSystem:  yes(n, "new-system"),
		NewPage:    yes(n, "new-page"),
		PageNumber: n.Attr("page-number"),
		Layouts:    Layouts(n, c),
	}
}

// Layouts hands every layout child of n to the layout collaborator, in
// document order. Collaborator failures become layout warnings.
func Layouts(n *xmltree.Node, c Context) []model.Layout {
	var out []model.Layout
	for _, el := range n.Children() {
		kind, ok := model.ParseLayoutKind(el.Name())
		if !ok {
			continue
		}
		if l, ok := Layout(el, kind, c); ok {
			out = append(out, l)
		}
	}
	return out
}

// Layout hands a single sub-tree to the layout collaborator.
func Layout(n *xmltree.Node, kind model.LayoutKind, c Context) (model.Layout, bool) {
	parser := c.Layout
	if parser == nil {
		parser = layout.Raw{}
	}
	raw := layout.RawElement{Name: n.Name(), Attrs: n.Attrs(), XML: n.OutputXML()}
	v, err := parser.ParseLayout(kind, raw)
	if err != nil {
		c.warn(n, types.RuleLayout, "%s: %v", kind, err)
		return model.Layout{}, false
	}
	return model.Layout{Kind: kind, Value: v}, true
}
