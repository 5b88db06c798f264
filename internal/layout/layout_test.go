package layout

import (
	"errors"
	"testing"

	"github.com/simonhull/musicxml/internal/model"
	"github.com/simonhull/musicxml/internal/types"
)

func TestRaw(t *testing.T) {
	elem := RawElement{Name: "scaling", Attrs: []types.Attr{{Key: "k", Value: "v"}}, XML: "<scaling/>"}

	v, err := Raw{}.ParseLayout(model.LayoutScaling, elem)
	if err != nil {
		t.Fatalf("ParseLayout() error = %v", err)
	}
	got, ok := v.(RawElement)
	if !ok {
		t.Fatalf("ParseLayout() returned %T, want RawElement", v)
	}
	if got.Name != "scaling" || got.XML != "<scaling/>" || len(got.Attrs) != 1 {
		t.Errorf("ParseLayout() = %+v", got)
	}
}

func TestParserFunc(t *testing.T) {
	boom := errors.New("boom")
	var p Parser = ParserFunc(func(kind model.LayoutKind, elem RawElement) (any, error) {
		if kind == model.LayoutPage {
			return nil, boom
		}
		return kind.String(), nil
	})

	if v, _ := p.ParseLayout(model.LayoutSystem, RawElement{}); v != "system-layout" {
		t.Errorf("ParseLayout(system) = %v", v)
	}
	if _, err := p.ParseLayout(model.LayoutPage, RawElement{}); !errors.Is(err, boom) {
		t.Errorf("ParseLayout(page) error = %v", err)
	}
}
