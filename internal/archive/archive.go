// Package archive resolves the MusicXML document inside an MXL container.
//
// An MXL file is a ZIP archive. The primary document is named by the first
// rootfile of META-INF/container.xml; when that descriptor is missing or
// unusable the first root-level .xml or .musicxml entry is used, and failing
// that any .xml entry in the archive.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/simonhull/musicxml/internal/registry"
	"github.com/simonhull/musicxml/internal/types"
)

// ContainerPath is the location of the MXL container descriptor.
const ContainerPath = "META-INF/container.xml"

var rootfileExpr = xpath.MustCompile("//rootfile")

func init() {
	registry.Register(types.FormatMXL, registry.ResolverFunc(Resolve))
}

// Resolve opens data as a ZIP archive and returns its MusicXML payload.
func Resolve(data []byte, opts registry.Options) (registry.Payload, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return registry.Payload{}, &types.ArchiveError{Reason: "open zip", Err: err}
	}

	f := fromContainer(zr, opts)
	if f == nil {
		f = fallback(zr.File)
	}
	if f == nil {
		return registry.Payload{}, &types.ArchiveError{Reason: "no MusicXML content found", Err: types.ErrNoMusicXML}
	}

	body, err := readEntry(f, opts.MaxSize)
	if err != nil {
		return registry.Payload{}, err
	}
	return registry.Payload{Data: body, Entry: f.Name}, nil
}

// fromContainer returns the entry named by the container descriptor, or nil.
// A descriptor that exists but cannot be followed is reported as a warning.
func fromContainer(zr *zip.Reader, opts registry.Options) *zip.File {
	desc := find(zr.File, ContainerPath)
	if desc == nil {
		return nil
	}

	warn := func(format string, args ...any) {
		if opts.Collector != nil {
			opts.Collector.Warn(types.RuleArchiveContainer, types.Location{}.With("entry", ContainerPath), format, args...)
		}
	}

	raw, err := readEntry(desc, opts.MaxSize)
	if err != nil {
		warn("cannot read container descriptor: %v", err)
		return nil
	}
	doc, err := xmlquery.Parse(bytes.NewReader(raw))
	if err != nil {
		warn("container descriptor is not well-formed XML: %v", err)
		return nil
	}
	rootfile := xmlquery.QuerySelector(doc, rootfileExpr)
	if rootfile == nil {
		warn("container descriptor has no rootfile")
		return nil
	}
	fullPath := strings.TrimPrefix(rootfile.SelectAttr("full-path"), "/")
	if fullPath == "" {
		warn("rootfile has no full-path attribute")
		return nil
	}
	f := find(zr.File, fullPath)
	if f == nil {
		warn("rootfile %q is not in the archive", fullPath)
		return nil
	}
	return f
}

// fallback picks the payload when the descriptor did not.
func fallback(files []*zip.File) *zip.File {
	for _, f := range files {
		if candidate(f) && !strings.Contains(f.Name, "/") && hasSuffix(f.Name, ".xml", ".musicxml") {
			return f
		}
	}
	for _, f := range files {
		if candidate(f) && hasSuffix(f.Name, ".xml") {
			return f
		}
	}
	return nil
}

func candidate(f *zip.File) bool {
	return !f.FileInfo().IsDir() && !strings.HasPrefix(f.Name, "META-INF/")
}

func hasSuffix(name string, suffixes ...string) bool {
	lower := strings.ToLower(name)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}

func find(files []*zip.File, name string) *zip.File {
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// readEntry decompresses f, refusing to read past limit bytes when limit
// is positive.
func readEntry(f *zip.File, limit int64) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, &types.ArchiveError{Reason: fmt.Sprintf("open entry %q", f.Name), Err: err}
	}
	defer rc.Close()

	var r io.Reader = rc
	if limit > 0 {
		r = io.LimitReader(rc, limit+1)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, &types.ArchiveError{Reason: fmt.Sprintf("read entry %q", f.Name), Err: err}
	}
	if limit > 0 && int64(len(body)) > limit {
		return nil, &types.ArchiveError{Reason: fmt.Sprintf("entry %q exceeds %d bytes", f.Name, limit), Err: types.ErrTooLarge}
	}
	return body, nil
}
