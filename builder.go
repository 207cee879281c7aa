package md2page

import (
	"context"
	"fmt"
	"strings"

	"github.com/edan/go-md2page/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.HTMLConverter          = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.PlaceholderSubstituter = (*pipeline.PlaceholderInjection)(nil)
)

// Builder orchestrates the README-to-landing-page pipeline.
// Create with NewBuilder and run builds with Build. A Builder is
// stateless across builds: identical inputs produce identical output.
type Builder struct {
	cfg           builderConfig
	htmlConverter pipeline.HTMLConverter
	substituter   pipeline.PlaceholderSubstituter
}

// NewBuilder creates a Builder with default configuration.
// Use options to customize behavior (e.g., WithPlaceholder).
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		cfg:           builderConfig{placeholder: DefaultPlaceholder},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		substituter:   &pipeline.PlaceholderInjection{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Build runs the full pipeline: trim the leading heading and tagline,
// render the remaining markdown to HTML, and substitute the fragment
// into the template's placeholder.
// The context is used for cancellation.
func (b *Builder) Build(ctx context.Context, input Input) (*BuildResult, error) {
	if input.Template == "" {
		return nil, ErrEmptyTemplate
	}

	md := pipeline.NormalizeLineEndings(input.Markdown)

	body := md
	if !b.cfg.keepHeading {
		lines := strings.Split(md, "\n")
		body = strings.Join(pipeline.TrimLeadingHeading(lines), "\n")
	}

	fragment, err := b.htmlConverter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	page, err := b.substituter.Substitute(ctx, input.Template, fragment, b.cfg.placeholder)
	if err != nil {
		return nil, fmt.Errorf("substituting fragment: %w", err)
	}

	return &BuildResult{
		Page:     []byte(page),
		Fragment: []byte(fragment),
	}, nil
}
