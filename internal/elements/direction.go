package elements

import (
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Direction parses a <direction>. Only words, segno, coda and dynamics are
// modelled; other direction types are skipped without a diagnostic. The
// second result is false when nothing modelled was found.
func Direction(n *xmltree.Node, c Context) (model.Direction, bool, error) {
	staff, err := c.optChildInt(n, "staff", "direction/staff", 0)
	if err != nil {
		return model.Direction{}, false, err
	}
	out := model.Direction{
		Placement: n.Attr("placement"),
		Voice:     childText(n, "voice"),
		Staff:     staff,
	}

	for _, dt := range n.ChildrenNamed("direction-type") {
		for _, el := range dt.Children() {
			kind, ok := model.ParseDirectionKind(el.Name())
			if !ok {
				continue
			}
			t := model.DirectionType{Kind: kind}
			switch kind {
			case model.DirectionWords:
				t.Text = el.Text()
				if t.Text == "" {
					c.warn(el, types.RuleEmptyWords, "empty words direction ignored")
					continue
				}
			case model.DirectionDynamics:
				for _, d := range el.Children() {
					if d.Name() == "other-dynamics" {
						t.Dynamics = append(t.Dynamics, d.Text())
						continue
					}
					t.Dynamics = append(t.Dynamics, d.Name())
				}
			}
			out.Types = append(out.Types, t)
		}
	}
	return out, len(out.Types) > 0, nil
}
