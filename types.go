package md2page

// DefaultPlaceholder is the sentinel marker the template must contain
// exactly once. It doubles as an HTML comment so an unbuilt template
// still renders cleanly in a browser.
const DefaultPlaceholder = "<!-- README_CONTENT -->"

// Input holds the two text inputs of a build.
type Input struct {
	Markdown string // README source text (UTF-8)
	Template string // HTML template containing the placeholder exactly once
}

// BuildResult holds the build output.
type BuildResult struct {
	Page     []byte // final HTML document
	Fragment []byte // rendered body before substitution, for debugging
}

// builderConfig holds configuration resolved from options.
type builderConfig struct {
	placeholder string
	keepHeading bool
}

// Option configures a Builder.
type Option func(*Builder)

// WithPlaceholder overrides the sentinel placeholder the template must
// contain. The default is DefaultPlaceholder.
func WithPlaceholder(placeholder string) Option {
	return func(b *Builder) {
		b.cfg.placeholder = placeholder
	}
}

// WithKeepHeading disables the leading heading/tagline trim. Useful for
// templates that do not present their own header.
func WithKeepHeading() Option {
	return func(b *Builder) {
		b.cfg.keepHeading = true
	}
}
