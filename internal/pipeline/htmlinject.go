package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for placeholder substitution.
var (
	ErrMissingPlaceholder   = errors.New("template is missing the placeholder")
	ErrAmbiguousPlaceholder = errors.New("template contains the placeholder more than once")
)

// PlaceholderSubstituter defines the contract for injecting a rendered
// fragment into an HTML template.
type PlaceholderSubstituter interface {
	Substitute(ctx context.Context, template, fragment, placeholder string) (string, error)
}

// PlaceholderInjection replaces a sentinel placeholder in an HTML
// template with a rendered fragment.
type PlaceholderInjection struct{}

// Substitute replaces the single occurrence of placeholder in template
// with fragment. The template must contain the placeholder exactly once:
// zero occurrences means the template was never wired for injection,
// and more than one makes the injection point ambiguous. Both are
// configuration errors, not recoverable conditions.
func (s *PlaceholderInjection) Substitute(ctx context.Context, template, fragment, placeholder string) (string, error) {
	// Check for cancellation
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch n := strings.Count(template, placeholder); {
	case n == 0:
		return "", fmt.Errorf("%w: expected %q", ErrMissingPlaceholder, placeholder)
	case n > 1:
		return "", fmt.Errorf("%w: %q appears %d times", ErrAmbiguousPlaceholder, placeholder, n)
	}

	return strings.Replace(template, placeholder, fragment, 1), nil
}
