package palette

import "fmt"

// Registry is an ordered, read-only set of schemes with a designated default.
// Lookups never fail: unknown keys resolve to the default scheme.
type Registry struct {
	schemes    []Scheme
	index      map[string]int
	defaultKey string
}

// NewRegistry builds a registry in the given order.
// Keys must be unique and defaultKey must name one of the schemes.
func NewRegistry(schemes []Scheme, defaultKey string) (*Registry, error) {
	if len(schemes) == 0 {
		return nil, fmt.Errorf("palette: registry needs at least one scheme")
	}

	r := &Registry{
		schemes:    make([]Scheme, 0, len(schemes)),
		index:      make(map[string]int, len(schemes)),
		defaultKey: defaultKey,
	}
	for _, s := range schemes {
		if s.IsZero() {
			return nil, fmt.Errorf("palette: registry entry %d has no key", len(r.schemes))
		}
		if _, dup := r.index[s.key]; dup {
			return nil, fmt.Errorf("palette: scheme %q registered twice", s.key)
		}
		r.index[s.key] = len(r.schemes)
		r.schemes = append(r.schemes, s)
	}

	if _, ok := r.index[defaultKey]; !ok {
		return nil, fmt.Errorf("palette: default scheme %q is not in the catalog", defaultKey)
	}
	return r, nil
}

// Lookup returns the scheme for key, or the default scheme if key is
// unknown or empty.
func (r *Registry) Lookup(key string) Scheme {
	if i, ok := r.index[key]; ok {
		return r.schemes[i]
	}
	return r.schemes[r.index[r.defaultKey]]
}

// Get returns the scheme for key without falling back.
func (r *Registry) Get(key string) (Scheme, bool) {
	i, ok := r.index[key]
	if !ok {
		return Scheme{}, false
	}
	return r.schemes[i], true
}

// Exists reports whether key names a registered scheme.
func (r *Registry) Exists(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Default returns the designated default scheme.
func (r *Registry) Default() Scheme {
	return r.schemes[r.index[r.defaultKey]]
}

// DefaultKey returns the key of the default scheme.
func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// List returns all schemes in catalog order.
func (r *Registry) List() []Scheme {
	out := make([]Scheme, len(r.schemes))
	copy(out, r.schemes)
	return out
}

// Keys returns all scheme keys in catalog order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.schemes))
	for i, s := range r.schemes {
		keys[i] = s.key
	}
	return keys
}

// Len returns the number of schemes.
func (r *Registry) Len() int {
	return len(r.schemes)
}

// Next returns the scheme after key in catalog order, wrapping around.
// A negative step walks backwards. Unknown keys start from the default.
func (r *Registry) Next(key string, step int) Scheme {
	i, ok := r.index[key]
	if !ok {
		i = r.index[r.defaultKey]
	}
	n := len(r.schemes)
	j := ((i+step)%n + n) % n
	return r.schemes[j]
}

// With returns a new registry holding r's schemes followed by extra.
// An extra scheme whose key already exists replaces the original in place.
// r itself is left untouched.
func (r *Registry) With(extra ...Scheme) (*Registry, error) {
	merged := r.List()
	for _, s := range extra {
		if i, ok := r.index[s.key]; ok {
			merged[i] = s
			continue
		}
		merged = append(merged, s)
	}
	return NewRegistry(merged, r.defaultKey)
}
