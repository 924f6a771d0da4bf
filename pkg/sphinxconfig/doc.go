// Package sphinxconfig resolves Sphinx documentation configuration from a
// project's pyproject.toml manifest.
//
// Two tables contribute to the result. Generic project metadata (name,
// version, description, author) comes from the PEP 621 [project] table, or
// from the legacy [tool.poetry] table when the poetry style is selected.
// Free-form Sphinx options come from [tool.sphinx-pyproject] and are passed
// through verbatim. The merged result is an ordered, read-only mapping:
// the normalized generic fields first (name, version, description, author),
// then the tool-section keys in declaration order. When a tool-section key
// collides with one of the four generic fields, the generic value wins.
//
// # Usage
//
//	cfg, err := sphinxconfig.Load("pyproject.toml")
//	if err != nil {
//	    return err
//	}
//
//	theme, err := cfg.Get("html_theme")
//
// A build script that wants its variables populated as a side effect can
// supply a namespace:
//
//	ns := map[string]any{}
//	cfg, err := sphinxconfig.Load("pyproject.toml", sphinxconfig.WithGlobalNS(ns))
//
// Only the first entry of the authors (or maintainers) list contributes to
// the author field; additional entries are ignored.
package sphinxconfig
