package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"

	"github.com/simonhull/musicxml"
	"github.com/simonhull/musicxml/internal/config"
)

// palette holds the color functions of the text outputs.
type palette struct {
	header  func(string, ...any) string
	label   func(string, ...any) string
	rule    func(string, ...any) string
	warning func(string, ...any) string
	fatal   func(string, ...any) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(string, ...any) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintfFunc()
	}
	return palette{
		header:  mk(color.Bold),
		label:   mk(color.Faint),
		rule:    mk(color.FgCyan),
		warning: mk(color.FgYellow),
		fatal:   mk(color.FgRed, color.Bold),
	}
}

// colorEnabled reports whether w is a terminal and color was not disabled.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type renderer struct {
	format string
	w      io.Writer
	colors palette
	enc    *json.Encoder
}

func newRenderer(format string, w io.Writer, colored bool) *renderer {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return &renderer{format: format, w: w, colors: newPalette(colored), enc: enc}
}

// jsonResult is the JSON document written per file.
type jsonResult struct {
	Path        string                `json:"path"`
	Source      *musicxml.Source      `json:"source,omitempty"`
	Score       *musicxml.Score       `json:"score,omitempty"`
	Diagnostics []musicxml.Diagnostic `json:"diagnostics"`
	Error       string                `json:"error,omitempty"`
}

func (r *renderer) result(path string, res *musicxml.Result) error {
	switch r.format {
	case config.OutputJSON:
		return r.enc.Encode(jsonResult{
			Path:        path,
			Source:      &res.Source,
			Score:       res.Score,
			Diagnostics: nonNil(res.Diagnostics),
		})
	case config.OutputDiagnostics:
		return r.diagnostics(path, res.Diagnostics)
	default:
		return r.summary(path, res)
	}
}

func (r *renderer) failure(path string, err error, diags []musicxml.Diagnostic) error {
	switch r.format {
	case config.OutputJSON:
		return r.enc.Encode(jsonResult{Path: path, Diagnostics: nonNil(diags), Error: err.Error()})
	case config.OutputDiagnostics:
		return r.diagnostics(path, diags)
	default:
		if _, werr := fmt.Fprintf(r.w, "%s\n  %s %v\n", r.colors.header("%s", path), r.colors.fatal("error:"), err); werr != nil {
			return werr
		}
		return r.diagnostics(path, warningsOnly(diags))
	}
}

func (r *renderer) summary(path string, res *musicxml.Result) error {
	s := res.Score
	src := res.Source
	c := r.colors

	fmt.Fprintf(r.w, "%s  %s", c.header("%s", path), src.Format)
	if src.Entry != "" {
		fmt.Fprintf(r.w, " (%s)", src.Entry)
	}
	fmt.Fprintf(r.w, "  blake3:%s\n", short(src.Digest))

	if title := s.Title(); title != "" {
		fmt.Fprintf(r.w, "  %s %s\n", c.label("Title:   "), title)
	}
	if composer := s.Composer(); composer != "" {
		fmt.Fprintf(r.w, "  %s %s\n", c.label("Composer:"), composer)
	}
	fmt.Fprintf(r.w, "  %s %s\n", c.label("Version: "), s.Version)
	fmt.Fprintf(r.w, "  %s %d\n", c.label("Parts:   "), len(s.Parts))
	for _, p := range s.Parts {
		notes := 0
		for _, m := range p.Measures {
			notes += len(m.Notes)
		}
		fmt.Fprintf(r.w, "    %-6s %-20s %4d measures %6d notes\n", p.ID, p.Name, len(p.Measures), notes)
	}

	warnings := res.Warnings()
	if len(warnings) == 0 {
		_, err := fmt.Fprintf(r.w, "  %s 0\n", c.label("Warnings:"))
		return err
	}
	fmt.Fprintf(r.w, "  %s %s\n", c.label("Warnings:"), c.warning("%d", len(warnings)))
	return r.diagnostics(path, warnings)
}

// diagnostics writes one "path:line: severity [rule] message" line each.
func (r *renderer) diagnostics(path string, diags []musicxml.Diagnostic) error {
	c := r.colors
	for _, d := range diags {
		sev := c.warning("%s", d.Severity)
		if d.Severity == musicxml.SeverityFatal {
			sev = c.fatal("%s", d.Severity)
		}
		pos := path
		if d.Location.Line > 0 {
			pos = fmt.Sprintf("%s:%d", path, d.Location.Line)
		}
		line := fmt.Sprintf("%s: %s %s %s", pos, sev, c.rule("[%s]", d.Rule), d.Message)
		if where := d.Location.AtLine(0).String(); where != "" {
			line += " (" + where + ")"
		}
		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}
	return nil
}

func warningsOnly(diags []musicxml.Diagnostic) []musicxml.Diagnostic {
	var out []musicxml.Diagnostic
	for _, d := range diags {
		if d.Severity == musicxml.SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

func nonNil(diags []musicxml.Diagnostic) []musicxml.Diagnostic {
	if diags == nil {
		return []musicxml.Diagnostic{}
	}
	return diags
}

func short(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
