package md2page

import (
	"errors"

	"github.com/edan/go-md2page/internal/pipeline"
)

// Sentinel errors for library operations. The pipeline sentinels are
// re-exported so callers can errors.Is against the root package without
// importing internals.
var (
	ErrEmptyTemplate = errors.New("template content cannot be empty")

	ErrHTMLConversion       = pipeline.ErrHTMLConversion
	ErrMissingPlaceholder   = pipeline.ErrMissingPlaceholder
	ErrAmbiguousPlaceholder = pipeline.ErrAmbiguousPlaceholder
)
