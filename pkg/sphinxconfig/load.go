package sphinxconfig

import (
	"fmt"

	"github.com/sphinx-toolbox/sphinx-pyproject/internal/pyproject"
)

// Load reads path as a pyproject.toml manifest and resolves the effective
// Sphinx configuration. The manifest is read exactly once; the returned
// Config is immutable.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{style: StylePEP621}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.style.valid() {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidStyle, o.style)
	}

	doc, err := pyproject.NewLoader().Load(path)
	if err != nil {
		return nil, err
	}

	return resolve(doc, o)
}

func resolve(doc *pyproject.Document, o options) (*Config, error) {
	var (
		meta metadata
		err  error
	)
	switch o.style {
	case StylePoetry:
		meta, err = parsePoetry(doc.Poetry)
	default:
		meta, err = parsePEP621(doc.Project)
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Name:        meta.name,
		Author:      meta.author,
		Version:     meta.version,
		Description: meta.description,
		values:      make(map[string]any),
	}

	// Generic fields first, in fixed order. The tool section cannot override
	// them: a colliding tool key is skipped silently.
	for _, e := range meta.entries() {
		cfg.add(e.key, e.value)
	}
	for _, key := range doc.ToolKeys {
		if cfg.Has(key) {
			continue
		}
		cfg.add(key, doc.Tool[key])
	}

	if o.globalns != nil {
		cfg.InjectInto(o.globalns)
	}

	return cfg, nil
}
