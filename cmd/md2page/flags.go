package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// buildFlags holds all flags for the md2page CLI.
type buildFlags struct {
	config      string
	template    string
	output      string
	placeholder string
	keepHeading bool
	quiet       bool
	verbose     bool
	version     bool
}

// parseBuildFlags parses CLI flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("md2page", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.template, "template", "t", "", "template file path or embedded template name")
	fs.StringVarP(&f.output, "output", "o", "", `output file path ("-" = stdout)`)
	fs.StringVar(&f.placeholder, "placeholder", "", "marker the template must contain exactly once")
	fs.BoolVar(&f.keepHeading, "keep-heading", false, "keep the leading heading and tagline")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show build details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes the CLI usage text.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `Usage: md2page [flags] [source.md]

Render a markdown README into an HTML landing page. The rendered page
is written to stdout unless --output is given.

Flags:
%s`, fs.FlagUsages())
}
