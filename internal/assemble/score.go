package assemble

import (
	"fmt"

	"github.com/antchfx/xpath"

	"github.com/simonhull/musicxml/internal/elements"
	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Root element names.
const (
	RootPartwise = "score-partwise"
	RootTimewise = "score-timewise"
)

// defaultVersion is the MusicXML version assumed when the root has none.
const defaultVersion = "1.0"

var (
	workNumberExpr   = xpath.MustCompile("work/work-number")
	workTitleExpr    = xpath.MustCompile("work/work-title")
	creatorExpr      = xpath.MustCompile("identification/creator")
	rightsExpr       = xpath.MustCompile("identification/rights")
	softwareExpr     = xpath.MustCompile("identification/encoding/software")
	encodingDateExpr = xpath.MustCompile("identification/encoding/encoding-date")
)

// Score assembles a parsed document into a Score.
//
// Only score-partwise is supported. A score-timewise root fails with
// ErrTimewiseUnsupported so callers can offer a conversion; any other root
// fails with ErrUnrecognizedRoot.
func Score(doc *xmltree.Document, opts Options) (*model.Score, error) {
	opts = opts.normalized()
	root := doc.Root()

	switch root.Name() {
	case RootPartwise:
	case RootTimewise:
		return nil, &types.UnsupportedFormatError{Reason: "score-timewise documents are not implemented", Err: types.ErrTimewiseUnsupported}
	default:
		return nil, &types.UnsupportedFormatError{Reason: fmt.Sprintf("root element <%s> is not a MusicXML score", root.Name()), Err: types.ErrUnrecognizedRoot}
	}

	score := &model.Score{Version: root.Attr("version")}
	if score.Version == "" {
		score.Version = defaultVersion
	}
	metadata(root, score)

	ctx := elements.Context{Diag: opts.Diag, Layout: opts.Layout}
	if defaults := root.Child("defaults"); defaults != nil {
		score.Defaults = elements.Layouts(defaults, ctx)
	}

	partList := root.Child("part-list")
	if partList == nil {
		opts.Diag.Warn(types.RulePartListMissing, types.Location{Line: root.Line()}, "score has no part-list; part names are unknown")
	} else {
		score.PartList = scoreParts(partList, opts)
	}

	seen := make(map[string]bool)
	for _, el := range root.ChildrenNamed("part") {
		part, err := Part(el, partList, opts)
		if err != nil {
			return nil, err
		}
		if seen[part.ID] {
			return nil, &types.ValidationError{
				Rule:     types.RulePartIDUnique,
				Message:  fmt.Sprintf("part id %q is used more than once", part.ID),
				Location: types.Location{Part: part.ID, Line: el.Line()},
			}
		}
		seen[part.ID] = true
		score.Parts = append(score.Parts, part)
	}

	opts.Logger.Debug("score assembled", "version", score.Version, "parts", len(score.Parts))
	return score, nil
}

// metadata fills the work, movement and identification blocks.
func metadata(root *xmltree.Node, s *model.Score) {
	s.Work.Number = text(root.QueryOne(workNumberExpr))
	s.Work.Title = text(root.QueryOne(workTitleExpr))
	s.MovementNumber, _ = root.ChildText("movement-number")
	s.MovementTitle, _ = root.ChildText("movement-title")

	for _, c := range root.Query(creatorExpr) {
		s.Identification.Creators = append(s.Identification.Creators, model.Creator{Type: c.Attr("type"), Name: c.Text()})
	}
	for _, r := range root.Query(rightsExpr) {
		s.Identification.Rights = append(s.Identification.Rights, r.Text())
	}
	for _, sw := range root.Query(softwareExpr) {
		s.Identification.Encoding.Software = append(s.Identification.Encoding.Software, sw.Text())
	}
	s.Identification.Encoding.Date = text(root.QueryOne(encodingDateExpr))
}

// scoreParts lists the score-part entries of the part-list. Part groups are
// reported once each and otherwise ignored.
func scoreParts(partList *xmltree.Node, opts Options) []model.ScorePart {
	var out []model.ScorePart
	for _, el := range partList.Children() {
		switch el.Name() {
		case "score-part":
			id := el.Attr("id")
			name, _ := el.ChildText("part-name")
			abbr, _ := el.ChildText("part-abbreviation")
			out = append(out, model.ScorePart{ID: id, Name: name, Abbreviation: abbr})
		case "part-group":
			opts.Diag.Warn(types.RulePartGroupUnsupported, types.Location{Line: el.Line()}.With("type", el.Attr("type")), "part-group is not supported and was ignored")
		}
	}
	return out
}

func text(n *xmltree.Node) string {
	if n == nil {
		return ""
	}
	return n.Text()
}
