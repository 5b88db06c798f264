package musicxml

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	_ "github.com/simonhull/musicxml/internal/archive" // Register MXL resolver
	"github.com/simonhull/musicxml/internal/assemble"
	"github.com/simonhull/musicxml/internal/diag"
	"github.com/simonhull/musicxml/internal/registry"
	"github.com/simonhull/musicxml/internal/types"
	"github.com/simonhull/musicxml/internal/xmltree"
)

// Source describes the input a Result was parsed from.
type Source struct {
	// Path of the file, empty for in-memory input
	Path string

	// Detected packaging (MusicXML or MXL)
	Format Format

	// Archive entry holding the document, empty for plain XML
	Entry string

	// BLAKE3-256 digest (hex) of the MusicXML payload
	Digest string

	// Input size in bytes
	Size int64
}

// Result is a parsed score with the diagnostics collected while parsing.
//
// The Score tree is immutable: nothing in it is modified after Parse
// returns, and callers must not modify it either.
type Result struct {
	// The parsed score
	Score *Score

	// Warnings recorded during the parse, in document order
	Diagnostics []Diagnostic

	// Where the score came from
	Source Source
}

// Warnings returns the warning-severity diagnostics.
func (r *Result) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Parse parses a MusicXML document held in memory. data may be plain XML or
// a compressed MXL archive; the format is detected from its first bytes.
//
// A structural or validation failure aborts the parse and is returned as
// the error. Recoverable issues are recorded in Result.Diagnostics.
//
// Example:
//
//	res, err := musicxml.Parse(data)
//	if err != nil {
//		return err
//	}
//	for _, part := range res.Score.Parts {
//		fmt.Printf("%s: %d measures\n", part.Name, len(part.Measures))
//	}
func Parse(data []byte, opts ...Option) (*Result, error) {
	return parse(data, "", applyOptions(opts))
}

// ParseContext is Parse with a context check before starting.
//
// A parse runs to completion once started; callers needing a deadline on
// very large documents should run it in their own goroutine.
func ParseContext(ctx context.Context, data []byte, opts ...Option) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// ParseReader reads r to the end and parses the result. The configured
// size limit applies to the bytes read.
func ParseReader(r io.Reader, opts ...Option) (*Result, error) {
	o := applyOptions(opts)
	if o.maxSize > 0 {
		r = io.LimitReader(r, o.maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return parse(data, "", o)
}

// ParseFile reads and parses a .musicxml, .xml or .mxl file.
//
// Example:
//
//	res, err := musicxml.ParseFile("sonata.mxl")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s by %s\n", res.Score.Title(), res.Score.Composer())
func ParseFile(path string, opts ...Option) (*Result, error) {
	return parseFile(path, applyOptions(opts))
}

func parseFile(path string, o *parseOptions) (*Result, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}
	if o.maxSize > 0 && stat.Size() > o.maxSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds limit of %d", path, ErrTooLarge, stat.Size(), o.maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return parse(data, path, o)
}

// ParseFiles parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths. The first
// failure cancels the remaining work and is returned.
//
// WithCollector is ignored: a Collector belongs to a single parse.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := musicxml.ParseFiles(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, r := range results {
//		fmt.Printf("%s: %d parts\n", r.Source.Path, len(r.Score.Parts))
//	}
func ParseFiles(ctx context.Context, paths []string, opts ...Option) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	o := applyOptions(opts)
	o.collector = nil

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Result, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := parseFile(path, o)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// parse runs the pipeline for one document: payload resolution, XML tree,
// assembly. Every call owns its collector.
func parse(data []byte, path string, o *parseOptions) (*Result, error) {
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("parse_id", uuid.NewString())
	if path != "" {
		logger = logger.With("path", path)
	}

	c := diag.New(logger)
	res, err := run(data, path, o, c, logger)
	if err != nil {
		c.Fatal(err)
	}
	if o.collector != nil {
		for d := range c.All() {
			o.collector.Add(d)
		}
	}
	return res, err
}

func run(data []byte, path string, o *parseOptions, c *diag.Collector, logger *slog.Logger) (*Result, error) {
	if o.maxSize > 0 && int64(len(data)) > o.maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTooLarge, len(data), o.maxSize)
	}

	format, err := types.DetectFormat(data, path)
	if err != nil {
		return nil, err
	}
	resolver := registry.Get(format)
	if resolver == nil {
		return nil, &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no resolver available for format %s", format),
			Err:    ErrUnrecognizedRoot,
		}
	}

	payload, err := resolver.Resolve(data, registry.Options{MaxSize: o.maxSize, Collector: c})
	if err != nil {
		var ae *ArchiveError
		if errors.As(err, &ae) {
			ae.Path = path
		}
		return nil, fmt.Errorf("resolve %s: %w", format, err)
	}
	sum := blake3.Sum256(payload.Data)
	src := Source{
		Path:   path,
		Format: format,
		Entry:  payload.Entry,
		Digest: hex.EncodeToString(sum[:]),
		Size:   int64(len(data)),
	}
	logger.Debug("payload resolved", "format", format.String(), "entry", src.Entry, "digest", src.Digest)

	key, cacheable := o.cacheKey(src.Digest)
	cacheable = cacheable && o.cache != nil

	var score *Score
	if cacheable {
		if entry, ok := o.cache.lru.Get(key); ok {
			logger.Debug("cache hit", "digest", src.Digest)
			for _, d := range entry.diagnostics {
				c.Add(d)
			}
			score = entry.score
		}
	}
	if score == nil {
		mark := c.Len()
		score, err = assembleScore(payload.Data, path, o, c, logger)
		if err != nil {
			return nil, err
		}
		if cacheable {
			o.cache.lru.Put(key, &cacheEntry{score: score, diagnostics: c.Snapshot()[mark:]})
		}
	}

	// Resolution and assembly diagnostics together, whether or not the
	// score came from the cache.
	diagnostics := c.Snapshot()
	if o.strictParsing {
		for _, d := range diagnostics {
			if d.Severity == SeverityWarning {
				return nil, &StrictError{Diagnostic: d}
			}
		}
	}
	if o.ignoreWarnings {
		diagnostics = nil
	}
	return &Result{Score: score, Diagnostics: diagnostics, Source: src}, nil
}

// assembleScore builds the XML tree of the payload and assembles it.
func assembleScore(data []byte, path string, o *parseOptions, c *diag.Collector, logger *slog.Logger) (*Score, error) {
	doc, err := xmltree.Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	score, err := assemble.Score(doc, assemble.Options{
		Diag:          c,
		Layout:        o.layout,
		Logger:        logger,
		Seed:          o.seed,
		DurationCheck: o.durationCheck,
	})
	if err != nil {
		var ue *UnsupportedFormatError
		if errors.As(err, &ue) {
			ue.Path = path
			return nil, err
		}
		if path != "" {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return score, nil
}
