// Package registry maps input container formats to the resolver that
// extracts the MusicXML payload from them.
package registry

import (
	"sync"

	"github.com/simonhull/musicxml/internal/diag"
	"github.com/simonhull/musicxml/internal/types"
)

// Payload is the MusicXML document found inside an input.
type Payload struct {
	Data  []byte
	Entry string // archive entry name, empty for plain XML
}

// Options controls payload resolution.
type Options struct {
	MaxSize   int64 // upper bound on the resolved payload, 0 means unlimited
	Collector *diag.Collector
}

// Resolver is the interface all container formats implement.
type Resolver interface {
	// Resolve returns the MusicXML payload held by data.
	Resolve(data []byte, opts Options) (Payload, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(data []byte, opts Options) (Payload, error)

// Resolve calls f.
func (f ResolverFunc) Resolve(data []byte, opts Options) (Payload, error) {
	return f(data, opts)
}

var (
	mu        sync.RWMutex
	resolvers = map[types.Format]Resolver{
		types.FormatXML: ResolverFunc(plain),
	}
)

// plain returns the input unchanged.
func plain(data []byte, opts Options) (Payload, error) {
	if opts.MaxSize > 0 && int64(len(data)) > opts.MaxSize {
		return Payload{}, types.ErrTooLarge
	}
	return Payload{Data: data}, nil
}

// Register registers a resolver for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, r Resolver) {
	mu.Lock()
	resolvers[format] = r
	mu.Unlock()
}

// Get returns the resolver for a given format.
// Returns nil if no resolver is registered for the format.
func Get(format types.Format) Resolver {
	mu.RLock()
	defer mu.RUnlock()
	return resolvers[format]
}
