package palette

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// DefaultLight is the cream base used by schemes that do not set their own
// light-square color.
const DefaultLight Color = 0xF5F1E8

// catalogFile mirrors the YAML layout of a palette catalog.
type catalogFile struct {
	Default string       `yaml:"default"`
	Light   string       `yaml:"light"`
	Schemes []schemeYAML `yaml:"schemes"`
}

// schemeYAML is a single catalog entry before validation.
type schemeYAML struct {
	Key    string   `yaml:"key"`
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
	Light  string   `yaml:"light,omitempty"`
}

// builtin is the process-wide catalog. It is complete before any exported
// function in this package can be called.
var builtin = mustParseCatalog(catalogYAML)

// ParseCatalog decodes a YAML catalog into a Registry.
// When the document has no default key the first scheme becomes the default.
func ParseCatalog(data []byte) (*Registry, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("palette: cannot parse catalog: %w", err)
	}

	base := DefaultLight
	if f.Light != "" {
		c, err := ParseColor(f.Light)
		if err != nil {
			return nil, fmt.Errorf("palette: catalog light color: %w", err)
		}
		base = c
	}

	schemes, err := decodeSchemes(f.Schemes, base)
	if err != nil {
		return nil, err
	}
	if len(schemes) == 0 {
		return nil, fmt.Errorf("palette: catalog has no schemes")
	}

	def := f.Default
	if def == "" {
		def = schemes[0].Key()
	}
	return NewRegistry(schemes, def)
}

// ParseSchemes decodes a YAML document holding only a "schemes" list, as used
// by user palette files. Entries without a light color get DefaultLight.
func ParseSchemes(data []byte) ([]Scheme, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("palette: cannot parse schemes: %w", err)
	}
	return decodeSchemes(f.Schemes, DefaultLight)
}

func decodeSchemes(entries []schemeYAML, base Color) ([]Scheme, error) {
	schemes := make([]Scheme, 0, len(entries))
	for _, e := range entries {
		accents := make([]Color, 0, len(e.Colors))
		for _, raw := range e.Colors {
			c, err := ParseColor(raw)
			if err != nil {
				return nil, fmt.Errorf("palette: scheme %q: %w", e.Key, err)
			}
			accents = append(accents, c)
		}

		light := base
		if e.Light != "" {
			c, err := ParseColor(e.Light)
			if err != nil {
				return nil, fmt.Errorf("palette: scheme %q light color: %w", e.Key, err)
			}
			light = c
		}

		s, err := NewScheme(e.Key, e.Name, accents, light)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}

func mustParseCatalog(data []byte) *Registry {
	r, err := ParseCatalog(data)
	if err != nil {
		panic(err)
	}
	return r
}

// Builtin returns the compiled-in catalog.
func Builtin() *Registry { return builtin }

// Lookup resolves key against the built-in catalog, falling back to the
// default scheme.
func Lookup(key string) Scheme { return builtin.Lookup(key) }

// List returns the built-in schemes in catalog order.
func List() []Scheme { return builtin.List() }

// Exists reports whether the built-in catalog has key.
func Exists(key string) bool { return builtin.Exists(key) }

// Default returns the built-in default scheme.
func Default() Scheme { return builtin.Default() }
