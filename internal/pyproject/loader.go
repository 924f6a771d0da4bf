package pyproject

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Loader loads pyproject.toml manifest files
type Loader struct{}

// NewLoader creates a new pyproject loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and parses a pyproject.toml file from the given path
func (l *Loader) Load(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pyproject.toml: %w", err)
	}

	return l.LoadFromBytes(data)
}

// LoadFromBytes parses a pyproject.toml manifest from raw bytes
func (l *Loader) LoadFromBytes(data []byte) (*Document, error) {
	var raw map[string]any

	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		if perr, ok := err.(toml.ParseError); ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTOML, perr.ErrorWithPosition())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidTOML, err)
	}

	doc := &Document{
		Project: asTable(raw["project"]),
	}

	if tool := asTable(raw["tool"]); tool != nil {
		doc.Poetry = asTable(tool["poetry"])
		doc.Tool = asTable(tool[toolTable])
	}

	if doc.Tool != nil {
		doc.ToolKeys = toolKeyOrder(md)
	}

	return doc, nil
}

// toolKeyOrder extracts the top-level keys of [tool.sphinx-pyproject] in the
// order they appear in the manifest. Nested keys (for example inline-table
// members) are reported by the decoder too, so only depth-one keys are kept,
// and repeats from dotted declarations are collapsed to the first occurrence.
func toolKeyOrder(md toml.MetaData) []string {
	var keys []string
	seen := make(map[string]bool)

	for _, key := range md.Keys() {
		if len(key) < 3 || key[0] != "tool" || key[1] != toolTable {
			continue
		}
		name := key[2]
		if !seen[name] {
			seen[name] = true
			keys = append(keys, name)
		}
	}

	return keys
}
