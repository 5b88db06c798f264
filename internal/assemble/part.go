package assemble

import (
	"fmt"
	"strings"

	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Part assembles one <part>. partList may be nil; when it is given the
// part's id must name one of its score-part entries.
//
// Measures are assembled in document order. Each starts from the context
// the previous one resolved, beginning with opts.Seed.
func Part(n *xmltree.Node, partList *xmltree.Node, opts Options) (model.Part, error) {
	opts = opts.normalized()
	loc := types.Location{Line: n.Line()}

	id := strings.TrimSpace(n.Attr("id"))
	if id == "" {
		return model.Part{}, &types.StructuralError{Path: "part/@id", Message: "required element or attribute missing", Location: loc}
	}
	loc.Part = id

	name := model.UnknownPartName
	if partList != nil {
		sp := scorePart(partList, id)
		if sp == nil {
			return model.Part{}, &types.ValidationError{
				Rule:     types.RulePartReference,
				Message:  fmt.Sprintf("part %q has no score-part in the part-list", id),
				Location: loc,
			}
		}
		name, _ = sp.ChildText("part-name")
	}

	state := opts.Seed
	ties := newTieTracker(id, opts.Diag)
	var measures []model.Measure
	for _, el := range n.ChildrenNamed("measure") {
		m, next, err := Measure(el, id, state, opts)
		if err != nil {
			return model.Part{}, err
		}
		ties.measure(&m)
		measures = append(measures, m)
		state = next
	}
	ties.finish()

	opts.Logger.Debug("part assembled", "part", id, "measures", len(measures))
	return model.Part{ID: id, Name: name, Measures: measures}, nil
}

// scorePart returns the score-part entry with the given id, or nil.
func scorePart(partList *xmltree.Node, id string) *xmltree.Node {
	for _, sp := range partList.ChildrenNamed("score-part") {
		if strings.TrimSpace(sp.Attr("id")) == id {
			return sp
		}
	}
	return nil
}
