package xmltree

import (
	"errors"
	"strings"
	"testing"

	"github.com/antchfx/xpath"

	"github.com/simonhull/musicxml/internal/types"
)

const sample = `<?xml version="1.0" encoding="UTF-8"?>
<score-partwise version="4.0">
  <part-list>
    <score-part id="P1"><part-name>Piano</part-name></score-part>
  </part-list>
  <part id="P1">
    <measure number="1">
      <note><rest/></note>
    </measure>
  </part>
</score-partwise>
`

func mustParse(t *testing.T, data string) *Document {
	t.Helper()
	doc, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParse_Navigation(t *testing.T) {
	doc := mustParse(t, sample)
	root := doc.Root()

	if root.Name() != "score-partwise" {
		t.Errorf("Root().Name() = %q", root.Name())
	}
	if v, ok := root.LookupAttr("version"); !ok || v != "4.0" {
		t.Errorf("LookupAttr(version) = %q, %v", v, ok)
	}
	if _, ok := root.LookupAttr("missing"); ok {
		t.Error("LookupAttr(missing) reported present")
	}

	children := root.Children()
	if len(children) != 2 {
		t.Fatalf("Children() = %d, want 2", len(children))
	}
	if got := len(root.ChildrenNamed("part")); got != 1 {
		t.Errorf("ChildrenNamed(part) = %d, want 1", got)
	}

	name, ok := root.Child("part-list").Child("score-part").ChildText("part-name")
	if !ok || name != "Piano" {
		t.Errorf("part-name = %q, %v", name, ok)
	}
	if root.Child("work") != nil || root.Has("work") {
		t.Error("Child(work) should be nil")
	}
}

func TestParse_Lines(t *testing.T) {
	doc := mustParse(t, sample)
	root := doc.Root()

	tests := []struct {
		node *Node
		want int
	}{
		{root, 2},
		{root.Child("part-list"), 3},
		{root.Child("part"), 6},
		{root.Child("part").Child("measure").Child("note"), 8},
	}
	for _, tt := range tests {
		if got := tt.node.Line(); got != tt.want {
			t.Errorf("%s.Line() = %d, want %d", tt.node.Name(), got, tt.want)
		}
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"mismatched", "<score-partwise><part></score-partwise>"},
		{"unclosed", "<score-partwise>"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			var pe *types.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse() error = %v, want *types.ParseError", err)
			}
			if !errors.Is(err, types.ErrMalformedXML) {
				t.Error("error should unwrap to ErrMalformedXML")
			}
		})
	}
}

func TestNode_Query(t *testing.T) {
	doc := mustParse(t, sample)
	expr := xpath.MustCompile("part-list/score-part")

	parts := doc.Root().Query(expr)
	if len(parts) != 1 || parts[0].Attr("id") != "P1" {
		t.Fatalf("Query() = %d nodes", len(parts))
	}
	if one := doc.Root().QueryOne(xpath.MustCompile("part/measure")); one == nil || one.Attr("number") != "1" {
		t.Error("QueryOne(part/measure) failed")
	}
	if doc.Root().QueryOne(xpath.MustCompile("work")) != nil {
		t.Error("QueryOne(work) should be nil")
	}
}

func TestNode_OutputXML(t *testing.T) {
	doc := mustParse(t, `<defaults><scaling><millimeters>7</millimeters><tenths>40</tenths></scaling></defaults>`)
	scaling := doc.Root().Child("scaling")

	out := scaling.OutputXML()
	if !strings.HasPrefix(out, "<scaling>") || !strings.Contains(out, "<tenths>40</tenths>") {
		t.Errorf("OutputXML() = %q", out)
	}

	var sb strings.Builder
	if err := scaling.WriteXML(&sb); err != nil {
		t.Fatalf("WriteXML() error = %v", err)
	}
	if sb.String() != out {
		t.Errorf("WriteXML() = %q, want %q", sb.String(), out)
	}
	if scaling.Text() != "740" {
		t.Errorf("Text() = %q", scaling.Text())
	}
	if attrs := doc.Root().Attrs(); len(attrs) != 0 {
		t.Errorf("Attrs() = %v", attrs)
	}
}
