package elements

import (
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Barline parses a <barline>. The location defaults to right and the style
// to regular.
func Barline(n *xmltree.Node, c Context) (model.Barline, error) {
	out := model.Barline{Location: model.BarLocationRight, Style: model.BarStyleRegular}

	if raw, ok := n.LookupAttr("location"); ok {
		out.Location, _ = variant(c, n, "barline location", raw, model.ParseBarLocation)
	}
	if el := n.Child("bar-style"); el != nil {
		out.Style, _ = variant(c, el, "bar style", el.Text(), model.ParseBarStyle)
	}
	if el := n.Child("repeat"); el != nil {
		r, ok, err := Repeat(el, c)
		if err != nil {
			return model.Barline{}, err
		}
		if ok {
			out.Repeat = &r
		}
	}
	if el := n.Child("ending"); el != nil {
		if e, ok := Ending(el, c); ok {
			out.Ending = &e
		}
	}
	return out, nil
}

// Repeat parses a <repeat>. A repeat with an unknown direction is dropped.
func Repeat(n *xmltree.Node, c Context) (model.Repeat, bool, error) {
	dir, ok := variant(c, n, "repeat direction", n.Attr("direction"), model.ParseRepeatDirection)
	if !ok {
		return model.Repeat{}, false, nil
	}
	out := model.Repeat{Direction: dir}
	if _, present := n.LookupAttr("times"); present {
		times, err := c.attrInt(n, "times", "barline/repeat/@times", 0)
		if err != nil {
			return model.Repeat{}, false, err
		}
		out.Times = &times
	}
	return out, true, nil
}

// Ending parses an <ending>. The number comes from the number attribute or,
// failing that, the element text. A missing type attribute falls back to
// text naming an ending type. An ending whose number or type cannot be
// resolved is reported and dropped.
func Ending(n *xmltree.Node, c Context) (model.Ending, bool) {
	text := n.Text()
	number := n.Attr("number")

	raw, hasType := n.LookupAttr("type")
	if !hasType {
		if typ, ok := model.ParseEndingType(text); ok && number != "" {
			return model.Ending{Number: number, Type: typ, Text: text}, true
		}
	}
	if number == "" {
		number = text
	}
	if number == "" || !hasType {
		c.warn(n, types.RuleEndingIncomplete, "ending dropped: number and type are both required")
		return model.Ending{}, false
	}
	typ, ok := variant(c, n, "ending type", raw, model.ParseEndingType)
	if !ok {
		return model.Ending{}, false
	}
	return model.Ending{Number: number, Type: typ, Text: text}, true
}
