package sphinxconfig

// Style selects which manifest table supplies the generic project metadata.
type Style string

const (
	// StylePEP621 reads generic metadata from the standard [project] table.
	StylePEP621 Style = "pep621"

	// StylePoetry reads generic metadata from the legacy [tool.poetry] table.
	StylePoetry Style = "poetry"
)

func (s Style) valid() bool {
	return s == StylePEP621 || s == StylePoetry
}

type options struct {
	style    Style
	globalns map[string]any
}

// Option configures Load.
type Option func(*options)

// WithStyle selects the manifest dialect for generic metadata. The default
// is StylePEP621.
func WithStyle(style Style) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithGlobalNS supplies a namespace that every entry of the resolved
// configuration is written into during Load. Existing keys are overwritten.
// This mirrors injecting values into a conf.py global namespace.
func WithGlobalNS(ns map[string]any) Option {
	return func(o *options) {
		o.globalns = ns
	}
}
