package typeface

// Option configures Parse and Register.
type Option func(*parseConfig)

// parseConfig holds configuration for typeface creation.
type parseConfig struct {
	name    string
	style   string
	hinting bool
	index   int
}

// defaultParseConfig returns the default configuration.
func defaultParseConfig() parseConfig {
	return parseConfig{
		name:    "", // from the name table
		style:   "", // from the name table
		hinting: false,
		index:   0,
	}
}

// WithName overrides the family name read from the font.
func WithName(name string) Option {
	return func(c *parseConfig) {
		c.name = name
	}
}

// WithStyle overrides the style read from the font.
func WithStyle(style string) Option {
	return func(c *parseConfig) {
		c.style = style
	}
}

// WithHinting marks the typeface as hinted, so GlyphPath and TextPath
// apply the vertical hinting transform.
func WithHinting(enabled bool) Option {
	return func(c *parseConfig) {
		c.hinting = enabled
	}
}

// WithCollectionIndex selects a face inside a font collection (.ttc/.otc).
// Single-font data only has index 0.
func WithCollectionIndex(i int) Option {
	return func(c *parseConfig) {
		c.index = i
	}
}
