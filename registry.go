package segcodec

import (
	"fmt"
	"sort"
)

// Registry maps codec names to codecs. Implementations must be safe for
// concurrent use and deterministic: resolving the same name twice
// against the same registry returns the same codec instance.
//
// Populating a registry is the job of an external discovery step; from
// this package's point of view a registry is a read-only lookup table.
type Registry interface {
	// Resolve returns the codec registered under name.
	// Returns ErrUnknownCodec if no codec has that name.
	Resolve(name string) (*Codec, error)
}

// Lister is the optional enumeration capability of a Registry. A
// registry backed by, say, a remote discovery service may not be able to
// enumerate; such registries simply do not implement Lister.
type Lister interface {
	// CodecNames returns all registered names. Order is unspecified.
	CodecNames() []string
}

// Names enumerates the names registered in r, sorted for stable output.
// Returns ErrListingUnsupported if r does not implement Lister.
func Names(r Registry) ([]string, error) {
	lister, ok := r.(Lister)
	if !ok {
		return nil, fmt.Errorf("%w (%T)", ErrListingUnsupported, r)
	}
	names := lister.CodecNames()
	sort.Strings(names)
	return names, nil
}

// MapRegistry is an immutable map-backed Registry. Because the map is
// never mutated after construction, lookups need no locking.
type MapRegistry struct {
	codecs map[string]*Codec
}

// Compile-time checks that MapRegistry implements Registry and Lister.
var (
	_ Registry = (*MapRegistry)(nil)
	_ Lister   = (*MapRegistry)(nil)
)

// NewMapRegistry builds a registry from the given codecs, keyed by their
// names. Returns ErrDuplicateName if two codecs share a name.
func NewMapRegistry(codecs ...*Codec) (*MapRegistry, error) {
	m := make(map[string]*Codec, len(codecs))
	for _, c := range codecs {
		if _, ok := m[c.Name()]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, c.Name())
		}
		m[c.Name()] = c
	}
	return &MapRegistry{codecs: m}, nil
}

// Resolve returns the codec registered under name.
func (r *MapRegistry) Resolve(name string) (*Codec, error) {
	c, ok := r.codecs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// CodecNames returns all registered names.
func (r *MapRegistry) CodecNames() []string {
	names := make([]string, 0, len(r.codecs))
	for name := range r.codecs {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered codecs.
func (r *MapRegistry) Len() int {
	return len(r.codecs)
}
