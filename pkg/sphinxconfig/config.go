package sphinxconfig

import (
	"fmt"
	"reflect"
)

// Config is the resolved, read-only Sphinx configuration. It is built once
// by Load and never mutated afterwards; callers wanting to change values
// should work on the copy returned by AsMap.
type Config struct {
	// Normalized generic metadata. Fields are empty when the manifest omits
	// the corresponding key.
	Name        string
	Author      string
	Version     string
	Description string

	keys   []string
	values map[string]any
}

// Get returns the value for key, or an error wrapping ErrKeyNotFound.
func (c *Config) Get(key string) (any, error) {
	v, ok := c.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return v, nil
}

// Lookup returns the value for key and whether it is present.
func (c *Config) Lookup(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Keys returns the configuration keys in iteration order: the generic fields
// first (name, version, description, author), then tool-section keys in
// declaration order. The slice is a copy.
func (c *Config) Keys() []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	return keys
}

// Len returns the number of entries.
func (c *Config) Len() int {
	return len(c.keys)
}

// AsMap returns an independent copy of the configuration as a plain map.
func (c *Config) AsMap() map[string]any {
	m := make(map[string]any, len(c.values))
	for k, v := range c.values {
		m[k] = v
	}
	return m
}

// EqualMap reports whether the configuration holds exactly the entries of m.
func (c *Config) EqualMap(m map[string]any) bool {
	if len(m) != len(c.values) {
		return false
	}
	for k, v := range c.values {
		other, ok := m[k]
		if !ok || !reflect.DeepEqual(v, other) {
			return false
		}
	}
	return true
}

// InjectInto writes every entry into ns, overwriting existing keys.
func (c *Config) InjectInto(ns map[string]any) {
	for _, k := range c.keys {
		ns[k] = c.values[k]
	}
}

func (c *Config) add(key string, value any) {
	c.keys = append(c.keys, key)
	c.values[key] = value
}
