// Package pyproject provides types and utilities for loading the tables of a
// pyproject.toml manifest that are relevant to Sphinx configuration: the
// PEP 621 [project] table, the legacy [tool.poetry] table, and the free-form
// [tool.sphinx-pyproject] table.
//
// # Manifest Format
//
// A typical manifest looks like:
//
//	[project]
//	name = "my-package"
//	version = "1.2.3"
//	description = "An example package"
//	authors = [{name = "Jane Doe", email = "jane@example.com"}]
//
//	[tool.sphinx-pyproject]
//	extensions = ["sphinx.ext.autodoc"]
//	html_theme = "furo"
//
// # Usage
//
// Load a manifest file:
//
//	loader := pyproject.NewLoader()
//	doc, err := loader.Load("pyproject.toml")
//	if err != nil {
//	    return err
//	}
//
//	for _, key := range doc.ToolKeys {
//	    // Tool-section keys in declaration order
//	}
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist
//   - ErrInvalidTOML: file is not valid TOML
package pyproject
