package pyproject

// toolTable is the fixed table name reserved for Sphinx options, independent
// of which style the generic metadata is read from.
const toolTable = "sphinx-pyproject"

// Document holds the tables of a pyproject.toml manifest relevant to Sphinx
// configuration. Tables absent from the manifest are nil.
type Document struct {
	// Project is the PEP 621 [project] table.
	Project map[string]any

	// Poetry is the legacy [tool.poetry] table.
	Poetry map[string]any

	// Tool is the [tool.sphinx-pyproject] table, passed through verbatim.
	Tool map[string]any

	// ToolKeys lists the top-level keys of Tool in declaration order.
	ToolKeys []string
}

// HasProject reports whether the manifest declared a [project] table.
func (d *Document) HasProject() bool {
	return d.Project != nil
}

// HasPoetry reports whether the manifest declared a [tool.poetry] table.
func (d *Document) HasPoetry() bool {
	return d.Poetry != nil
}

// asTable converts a decoded TOML value to a table, returning nil for
// non-table values.
func asTable(v any) map[string]any {
	t, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return t
}
