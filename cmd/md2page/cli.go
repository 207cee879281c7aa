package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	md2page "github.com/edan/go-md2page"
	"github.com/edan/go-md2page/internal/assets"
	"github.com/edan/go-md2page/internal/config"
	"github.com/edan/go-md2page/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrInvalidFlags = errors.New("invalid command line flags")
	ErrReadSource   = errors.New("failed to read markdown source")
	ErrReadTemplate = errors.New("failed to read template")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrTooManyArgs  = errors.New("at most one source file may be given")
)

const (
	defaultSource = "README.md"
	stdoutPath    = "-"
)

// run parses arguments, reads inputs, and delegates to the builder.
// The rendered page goes to stdout (or the --output file); diagnostics
// go to stderr.
func run(args []string, stdout io.Writer) error {
	flags, positional, err := parseBuildFlags(args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	if flags.version {
		fmt.Fprintln(stdout, Version)
		return nil
	}

	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyArgs, len(positional))
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
	}

	// Flag > config > default precedence.
	sourcePath := firstNonEmpty(positionalSource(positional), cfg.Source, defaultSource)
	templateRef := firstNonEmpty(flags.template, cfg.Template)
	outputPath := firstNonEmpty(flags.output, cfg.Output, stdoutPath)
	placeholder := firstNonEmpty(flags.placeholder, cfg.Placeholder, md2page.DefaultPlaceholder)

	if flags.verbose && !flags.quiet {
		fmt.Fprintf(os.Stderr, "source: %s\n", sourcePath)
		fmt.Fprintf(os.Stderr, "template: %s\n", templateDescription(templateRef))
		fmt.Fprintf(os.Stderr, "placeholder: %s\n", placeholder)
	}

	markdown, err := fileutil.ReadTextFile(sourcePath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	template, err := resolveTemplate(templateRef)
	if err != nil {
		return err
	}

	var opts []md2page.Option
	opts = append(opts, md2page.WithPlaceholder(placeholder))
	if flags.keepHeading || cfg.KeepHeading {
		opts = append(opts, md2page.WithKeepHeading())
	}

	builder := md2page.NewBuilder(opts...)
	result, err := builder.Build(context.Background(), md2page.Input{
		Markdown: markdown,
		Template: template,
	})
	if err != nil {
		// Placeholder problems are template configuration errors; name the
		// template so the user knows which file to fix.
		if errors.Is(err, md2page.ErrMissingPlaceholder) || errors.Is(err, md2page.ErrAmbiguousPlaceholder) {
			return fmt.Errorf("template %s: %w", templateDescription(templateRef), err)
		}
		return err
	}

	if err := writeOutput(stdout, outputPath, result.Page); err != nil {
		return err
	}

	if outputPath != stdoutPath && !flags.quiet {
		fmt.Fprintf(os.Stderr, "Created %s\n", outputPath)
	}
	return nil
}

// resolveTemplate loads the template from a file path, an embedded
// template name, or the embedded default when ref is empty.
func resolveTemplate(ref string) (string, error) {
	if ref == "" {
		return assets.LoadTemplate(assets.DefaultTemplateName)
	}

	if fileutil.IsFilePath(ref) {
		content, err := fileutil.ReadTextFile(ref)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadTemplate, err)
		}
		return content, nil
	}

	return assets.LoadTemplate(ref)
}

// writeOutput delivers the page to stdout or the given file path.
func writeOutput(stdout io.Writer, path string, page []byte) error {
	if path == stdoutPath {
		if _, err := stdout.Write(page); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.WriteFile(path, page, 0o644); err != nil { // #nosec G306 -- rendered page is public content
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// positionalSource returns the optional positional source argument.
func positionalSource(positional []string) string {
	if len(positional) == 0 {
		return ""
	}
	return positional[0]
}

// templateDescription names the template source for verbose output.
func templateDescription(ref string) string {
	if ref == "" {
		return "embedded:" + assets.DefaultTemplateName
	}
	if fileutil.IsFilePath(ref) {
		return ref
	}
	return "embedded:" + ref
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
