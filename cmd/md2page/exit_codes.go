package main

import (
	"errors"
	"os"

	md2page "github.com/edan/go-md2page"
	"github.com/edan/go-md2page/internal/assets"
	"github.com/edan/go-md2page/internal/config"
	"github.com/edan/go-md2page/internal/fileutil"
)

// Exit codes for the md2page CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful build
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or template wiring
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadSource) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, fileutil.ErrInputTooLarge) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2page.ErrEmptyTemplate) ||
		errors.Is(err, md2page.ErrMissingPlaceholder) ||
		errors.Is(err, md2page.ErrAmbiguousPlaceholder) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrTooManyArgs) {
		return ExitUsage
	}

	return ExitGeneral
}
