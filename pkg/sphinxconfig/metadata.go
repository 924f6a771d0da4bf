package sphinxconfig

import (
	"fmt"
	"strings"
)

// metadata holds the normalized generic project fields. A present flag
// distinguishes an omitted key from an empty string.
type metadata struct {
	name        string
	version     string
	description string
	author      string

	hasName        bool
	hasVersion     bool
	hasDescription bool
	hasAuthor      bool
}

type entry struct {
	key   string
	value any
}

// entries returns the present fields in their fixed iteration order.
func (m metadata) entries() []entry {
	var out []entry
	if m.hasName {
		out = append(out, entry{"name", m.name})
	}
	if m.hasVersion {
		out = append(out, entry{"version", m.version})
	}
	if m.hasDescription {
		out = append(out, entry{"description", m.description})
	}
	if m.hasAuthor {
		out = append(out, entry{"author", m.author})
	}
	return out
}

// parsePEP621 normalizes metadata from a [project] table. A nil table yields
// empty metadata.
func parsePEP621(project map[string]any) (metadata, error) {
	var m metadata
	if project == nil {
		return m, nil
	}

	var err error
	if v, ok := project["name"]; ok {
		if m.name, err = stringValue("project.name", v); err != nil {
			return m, err
		}
		m.hasName = true
	}

	if v, ok := project["version"]; ok {
		if m.version, err = stringValue("project.version", v); err != nil {
			return m, err
		}
		m.hasVersion = true
	} else if dynamicLists(project, "version") {
		return m, fmt.Errorf("%w: 'project.version' has no literal value", ErrDynamicVersion)
	}

	if v, ok := project["description"]; ok {
		if m.description, err = stringValue("project.description", v); err != nil {
			return m, err
		}
		m.hasDescription = true
	}

	author, ok, err := firstPersonName(project)
	if err != nil {
		return m, err
	}
	if ok {
		m.author = author
		m.hasAuthor = true
	}

	return m, nil
}

// parsePoetry normalizes metadata from a legacy [tool.poetry] table, where
// authors are single "Name <email>" strings.
func parsePoetry(poetry map[string]any) (metadata, error) {
	var m metadata
	if poetry == nil {
		return m, nil
	}

	var err error
	if v, ok := poetry["name"]; ok {
		if m.name, err = stringValue("tool.poetry.name", v); err != nil {
			return m, err
		}
		m.hasName = true
	}
	if v, ok := poetry["version"]; ok {
		if m.version, err = stringValue("tool.poetry.version", v); err != nil {
			return m, err
		}
		m.hasVersion = true
	}
	if v, ok := poetry["description"]; ok {
		if m.description, err = stringValue("tool.poetry.description", v); err != nil {
			return m, err
		}
		m.hasDescription = true
	}

	for _, field := range []string{"authors", "maintainers"} {
		v, ok := poetry[field]
		if !ok {
			continue
		}
		names, err := stringList("tool.poetry."+field, v)
		if err != nil {
			return m, err
		}
		if len(names) == 0 {
			continue
		}
		name := strippedAuthor(names[0])
		if err := checkCommas("tool.poetry."+field+"[0]", name); err != nil {
			return m, err
		}
		m.author = name
		m.hasAuthor = true
		break
	}

	return m, nil
}

// firstPersonName extracts the name of the first entry of project.authors,
// falling back to project.maintainers. Only the first entry counts; entries
// without a name are skipped to the fallback list.
func firstPersonName(project map[string]any) (string, bool, error) {
	for _, field := range []string{"authors", "maintainers"} {
		v, ok := project[field]
		if !ok {
			continue
		}
		people, err := tableList("project."+field, v)
		if err != nil {
			return "", false, err
		}
		if len(people) == 0 {
			continue
		}
		raw, ok := people[0]["name"]
		if !ok {
			continue
		}
		path := fmt.Sprintf("project.%s[0].name", field)
		name, err := stringValue(path, raw)
		if err != nil {
			return "", false, err
		}
		if err := checkCommas(path, name); err != nil {
			return "", false, err
		}
		return name, true, nil
	}
	return "", false, nil
}

// strippedAuthor removes an angle-bracket email suffix from a combined
// "Name <email>" author string.
func strippedAuthor(s string) string {
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// dynamicLists reports whether project.dynamic includes the given field.
func dynamicLists(project map[string]any, field string) bool {
	fields, err := stringList("project.dynamic", project["dynamic"])
	if err != nil {
		return false
	}
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}

// checkCommas rejects author names containing commas: Sphinx uses commas to
// separate multiple authors, so such a name would be misread downstream.
func checkCommas(path, name string) error {
	if strings.Contains(name, ",") {
		return fmt.Errorf("%w: %s", ErrAuthorCommas, path)
	}
	return nil
}

func stringValue(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrBadMetadata, path, v)
	}
	return s, nil
}

func stringList(path string, v any) ([]string, error) {
	if v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for i, item := range list {
			s, err := stringValue(fmt.Sprintf("%s[%d]", path, i), item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a list of strings, got %T", ErrBadMetadata, path, v)
}

// tableList converts a decoded authors/maintainers value to a list of
// tables. The TOML decoder yields []map[string]any for arrays of tables and
// []any for inline arrays, so both shapes are accepted.
func tableList(path string, v any) ([]map[string]any, error) {
	switch list := v.(type) {
	case []map[string]any:
		return list, nil
	case []any:
		out := make([]map[string]any, 0, len(list))
		for i, item := range list {
			t, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] must be a table, got %T", ErrBadMetadata, path, i, item)
			}
			out = append(out, t)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %s must be a list of tables, got %T", ErrBadMetadata, path, v)
}
