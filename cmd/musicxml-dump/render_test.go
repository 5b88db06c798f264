package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/simonhull/musicxml/internal/config"
	"github.com/simonhull/musicxml/internal/logging"
)

const duet = `<score-partwise version="4.0">
  <work><work-title>Duet</work-title></work>
  <part-list>
    <score-part id="P1"><part-name>Violin</part-name></score-part>
    <score-part id="P2"><part-name>Cello</part-name></score-part>
  </part-list>
  <part id="P1"><measure number="1">
    <attributes><divisions>1</divisions><time><beats>2</beats><beat-type>4</beat-type></time></attributes>
    <note><pitch><step>E</step><octave>5</octave></pitch><duration>1</duration><voice>1</voice></note>
    <note><pitch><step>D</step><octave>5</octave></pitch><duration>1</duration><voice>1</voice></note>
  </measure></part>
  <part id="P2"><measure number="1">
    <attributes><divisions>1</divisions></attributes>
    <note><pitch><step>C</step><octave>3</octave></pitch><duration>1</duration></note>
    <backup><duration>1</duration></backup>
  </measure></part>
</score-partwise>`

func writeScore(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func runDump(t *testing.T, cmd DumpCmd) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	g := &globals{
		cfg:     config.Default(),
		logger:  logging.New(&logs, 0, logging.FormatText),
		noColor: true,
		stdout:  &out,
		stderr:  &logs,
	}
	err := cmd.Run(g)
	return out.String(), err
}

func TestDump_Summary(t *testing.T) {
	path := writeScore(t, "duet.musicxml", duet)

	out, err := runDump(t, DumpCmd{Paths: []string{path}})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, want := range []string{
		path + "  MusicXML",
		"Duet",
		"Parts:    2",
		"Violin",
		"Cello",
		"Warnings: 1",
		"[backup_unsupported_warning]",
		"part P2, measure 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("summary should not contain escape codes when color is disabled")
	}
}

func TestDump_Diagnostics(t *testing.T) {
	path := writeScore(t, "duet.musicxml", duet)

	out, err := runDump(t, DumpCmd{Paths: []string{path}, Output: config.OutputDiagnostics})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], path+":") || !strings.Contains(lines[0], "warning [backup_unsupported_warning]") {
		t.Errorf("line = %q", lines[0])
	}
}

func TestDump_JSON(t *testing.T) {
	path := writeScore(t, "duet.musicxml", duet)

	out, err := runDump(t, DumpCmd{Paths: []string{path}, Output: config.OutputJSON, IgnoreWarnings: true})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	var doc struct {
		Path   string
		Source struct {
			Format string
		}
		Score struct {
			Version string
			Parts   []struct {
				ID       string
				Measures []struct {
					Number string
					Notes  []json.RawMessage
				}
			}
		}
		Diagnostics []json.RawMessage
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if doc.Path != path || doc.Source.Format != "MusicXML" || doc.Score.Version != "4.0" {
		t.Errorf("doc = %+v", doc)
	}
	var ids []string
	for _, p := range doc.Score.Parts {
		ids = append(ids, p.ID)
	}
	if diff := cmp.Diff([]string{"P1", "P2"}, ids); diff != "" {
		t.Errorf("part ids mismatch (-want +got):\n%s", diff)
	}
	if got := len(doc.Score.Parts[0].Measures[0].Notes); got != 2 {
		t.Errorf("P1 notes = %d, want 2", got)
	}
	if len(doc.Diagnostics) != 0 {
		t.Errorf("diagnostics = %d, want 0 with ignore-warnings", len(doc.Diagnostics))
	}
}

func TestDump_Failures(t *testing.T) {
	good := writeScore(t, "duet.musicxml", duet)
	timewise := writeScore(t, "opus.musicxml", `<score-timewise version="4.0"/>`)
	underfull := writeScore(t, "short.musicxml", strings.Replace(duet, "<duration>1</duration><voice>1</voice></note>\n    <note><pitch><step>D</step>", "<duration>1</duration><voice>2</voice></note>\n    <note><pitch><step>D</step>", 1))

	tests := []struct {
		name string
		cmd  DumpCmd
		want []string
	}{
		{
			name: "unsupported root",
			cmd:  DumpCmd{Paths: []string{timewise, good}},
			want: []string{"error:", "score-timewise", "Violin"},
		},
		{
			name: "strict",
			cmd:  DumpCmd{Paths: []string{good}, Strict: true},
			want: []string{"error:", "backup_unsupported_warning"},
		},
		{
			name: "duration check json",
			cmd:  DumpCmd{Paths: []string{underfull}, Output: config.OutputJSON, DurationCheck: "strict"},
			want: []string{`"error"`, "measure_duration_validation", `"Severity": "fatal"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runDump(t, tt.cmd)
			if !errors.Is(err, errFailed) {
				t.Fatalf("Run() error = %v, want errFailed", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestDump_InvalidOptions(t *testing.T) {
	path := writeScore(t, "duet.musicxml", duet)

	if _, err := runDump(t, DumpCmd{Paths: []string{path}, Output: "pdf"}); err == nil || errors.Is(err, errFailed) {
		t.Errorf("Run(output=pdf) error = %v, want validation error", err)
	}
	if _, err := runDump(t, DumpCmd{Paths: []string{path}, DurationCheck: "always"}); err == nil {
		t.Error("Run(duration-check=always) error = nil")
	}
}

func TestPalette(t *testing.T) {
	plain := newPalette(false)
	if got := plain.rule("[%s]", "x"); got != "[x]" {
		t.Errorf("plain rule = %q", got)
	}
	colored := newPalette(true)
	if got := colored.fatal("fatal"); !strings.Contains(got, "\x1b[") {
		t.Errorf("colored fatal = %q, want escape codes", got)
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if colorEnabled(&buf, false) {
		t.Error("a buffer is not a terminal")
	}
	if colorEnabled(os.Stdout, true) {
		t.Error("--no-color must win")
	}
}
