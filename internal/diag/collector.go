// Package diag collects the non-fatal issues found during a parse.
package diag

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/simonhull/musicxml/internal/types"
)

// Collector is an append-only sink of diagnostics.
//
// A Collector belongs to a single parse call. It is safe to Drain it from a
// reporting goroutine while the parse that owns it is still running.
type Collector struct {
	mu     sync.Mutex
	items  []types.Diagnostic
	logger *slog.Logger
}

// New returns an empty Collector. Every diagnostic added is also logged to
// logger; a nil logger disables logging.
func New(logger *slog.Logger) *Collector {
	return &Collector{logger: logger}
}

// SetLogger replaces the logger used for subsequent diagnostics.
func (c *Collector) SetLogger(logger *slog.Logger) {
	c.mu.Lock()
	c.logger = logger
	c.mu.Unlock()
}

// Add appends a diagnostic.
func (c *Collector) Add(d types.Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	logger := c.logger
	c.mu.Unlock()

	if logger == nil {
		return
	}
	level := slog.LevelWarn
	if d.Severity == types.SeverityFatal {
		level = slog.LevelError
	}
	logger.Log(context.Background(), level, d.Message,
		"rule", d.Rule,
		"part", d.Location.Part,
		"measure", d.Location.Measure,
		"line", d.Location.Line,
	)
}

// Warn appends a warning built from a format string.
func (c *Collector) Warn(rule string, loc types.Location, format string, args ...any) {
	c.Add(types.Diagnostic{
		Severity: types.SeverityWarning,
		Rule:     rule,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	})
}

// Fatal records the diagnostic for an error that aborts the parse.
func (c *Collector) Fatal(err error) {
	if err == nil {
		return
	}
	d := types.Diagnostic{Severity: types.SeverityFatal, Message: err.Error()}
	if loc, rule, ok := describe(err); ok {
		d.Location = loc
		d.Rule = rule
	}
	c.Add(d)
}

// Len returns the number of diagnostics collected so far.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Snapshot returns a copy of the diagnostics collected so far.
func (c *Collector) Snapshot() []types.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// All iterates over a snapshot of the collected diagnostics.
func (c *Collector) All() iter.Seq[types.Diagnostic] {
	return slices.Values(c.Snapshot())
}

// Warnings returns only the warning-severity diagnostics.
func (c *Collector) Warnings() []types.Diagnostic {
	var out []types.Diagnostic
	for d := range c.All() {
		if d.Severity == types.SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Drain returns all diagnostics and empties the collector.
func (c *Collector) Drain() []types.Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := c.items
	c.items = nil
	return out
}
