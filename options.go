package musicxml

import (
	"log/slog"

	"github.com/simonhull/musicxml/internal/assemble"
	"github.com/simonhull/musicxml/internal/diag"
)

// DefaultMaxSize is the default limit on input and payload size (64 MiB).
const DefaultMaxSize = 64 << 20

// Option configures a parse.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	res, err := musicxml.ParseFile("song.musicxml",
//	    musicxml.WithStrictParsing(),
//	    musicxml.WithDurationCheck(musicxml.DurationCheckWarn),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for one parse call.
type parseOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Drop warnings from the Result
	durationCheck  DurationCheck
	seed           Context
	layout         LayoutParser
	logger         *slog.Logger
	collector      *Collector
	cache          *Cache
	maxSize        int64 // 0 = no limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		durationCheck: DurationCheckOff,
		maxSize:       DefaultMaxSize,
	}
}

func applyOptions(opts []Option) *parseOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// DurationCheck selects how measures whose notes do not fill the time
// signature are handled.
type DurationCheck = assemble.DurationCheck

// Measure duration reconciliation modes.
const (
	DurationCheckOff    = assemble.DurationCheckOff
	DurationCheckWarn   = assemble.DurationCheckWarn
	DurationCheckStrict = assemble.DurationCheckStrict
)

// ParseDurationCheck maps "off", "warn" or "strict" to a DurationCheck.
func ParseDurationCheck(s string) (DurationCheck, error) {
	return assemble.ParseDurationCheck(s)
}

// Context is the musical context (divisions, key, time) in effect at a
// point of a part.
type Context = assemble.State

// Collector is the diagnostics sink of a parse. See WithCollector.
type Collector = diag.Collector

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return diag.New(nil)
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default parsing continues past recoverable issues such as unsupported
// part groups or backup elements, recording them as warnings. With strict
// parsing the first warning fails the parse with a *StrictError.
//
// Example:
//
//	res, err := musicxml.Parse(data, musicxml.WithStrictParsing())
//	// errors.Is(err, musicxml.ErrStrict) if ANY warning was recorded
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings drops warnings from Result.Diagnostics.
//
// Warnings are still sent to a collector given with WithCollector and to
// the logger.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithDurationCheck enables reconciliation of each measure's note durations
// against its time signature. The default is DurationCheckOff.
func WithDurationCheck(mode DurationCheck) Option {
	return func(o *parseOptions) {
		o.durationCheck = mode
	}
}

// WithSeed sets the context every part starts from, for documents whose
// first measure relies on divisions or a meter declared elsewhere.
func WithSeed(seed Context) Option {
	return func(o *parseOptions) {
		o.seed = seed
	}
}

// WithLayoutParser sets the collaborator that interprets scaling, page,
// system and staff layout and appearance sub-trees. By default they are
// kept as RawElement values.
func WithLayoutParser(p LayoutParser) Option {
	return func(o *parseOptions) {
		o.layout = p
	}
}

// WithLogger sets the logger. Every record carries a parse_id attribute.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		o.logger = logger
	}
}

// WithCollector sends diagnostics to c in addition to the Result. Unlike
// Result.Diagnostics, c also sees the diagnostics of a failed parse.
//
// A Collector must not be shared by concurrent parses.
func WithCollector(c *Collector) Option {
	return func(o *parseOptions) {
		o.collector = c
	}
}

// WithCache memoizes assembled scores in c, keyed by payload digest and
// duration check. Strict and ignore still apply to cached results.
func WithCache(c *Cache) Option {
	return func(o *parseOptions) {
		o.cache = c
	}
}

// WithMaxSize limits the input and the decompressed payload to n bytes.
// Zero or a negative value removes the limit. Default is DefaultMaxSize.
func WithMaxSize(n int64) Option {
	return func(o *parseOptions) {
		o.maxSize = max(n, 0)
	}
}
