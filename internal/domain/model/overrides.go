package model

import (
	"encoding/json"
	"maps"
)

// Overrides holds static resolutions that take precedence over cache and network.
// Useful for local development and CI where the registry is unavailable.
type Overrides struct {
	// Packages maps package names to addresses.
	Packages map[string]string `json:"packages"`
	// Types maps type names to full type signatures.
	Types map[string]string `json:"types"`
}

// NewOverrides returns an empty override table.
func NewOverrides() Overrides {
	return Overrides{
		Packages: map[string]string{},
		Types:    map[string]string{},
	}
}

// ParseOverrides decodes overrides from their JSON document form.
func ParseOverrides(data []byte) (Overrides, error) {
	o := NewOverrides()
	if err := json.Unmarshal(data, &o); err != nil {
		return Overrides{}, err
	}
	if o.Packages == nil {
		o.Packages = map[string]string{}
	}
	if o.Types == nil {
		o.Types = map[string]string{}
	}
	return o, nil
}

// JSON encodes the overrides as an indented JSON document.
func (o Overrides) JSON() ([]byte, error) {
	return json.MarshalIndent(o, "", "  ")
}

// WithPackage returns a copy with the given package override added.
func (o Overrides) WithPackage(name, address string) Overrides {
	c := o.Clone()
	c.Packages[name] = address
	return c
}

// WithType returns a copy with the given type override added.
func (o Overrides) WithType(name, signature string) Overrides {
	c := o.Clone()
	c.Types[name] = signature
	return c
}

// Package looks up a package override.
func (o *Overrides) Package(name string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.Packages[name]
	return v, ok
}

// Type looks up a type override.
func (o *Overrides) Type(name string) (string, bool) {
	if o == nil {
		return "", false
	}
	v, ok := o.Types[name]
	return v, ok
}

// Clone returns a deep copy.
func (o Overrides) Clone() Overrides {
	c := Overrides{
		Packages: make(map[string]string, len(o.Packages)),
		Types:    make(map[string]string, len(o.Types)),
	}
	maps.Copy(c.Packages, o.Packages)
	maps.Copy(c.Types, o.Types)
	return c
}

// Len returns the total number of overrides.
func (o *Overrides) Len() int {
	if o == nil {
		return 0
	}
	return len(o.Packages) + len(o.Types)
}
