// Package md2page renders a project's README into an HTML landing page.
//
// # Quick Start
//
// Create a builder and run it with the two text inputs:
//
//	builder := md2page.NewBuilder()
//
//	result, err := builder.Build(ctx, md2page.Input{
//	    Markdown: readme,
//	    Template: template,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Page)
//
// The result contains the final page (result.Page) and the intermediate
// rendered fragment (result.Fragment) for debugging.
//
// # Build Pipeline
//
// The build follows three stages:
//
//  1. Leading heading/tagline trimming (the template header already
//     presents the project name and tagline)
//  2. Markdown to HTML conversion via Goldmark (tables, fenced code
//     with syntax highlighting)
//  3. Substitution of the fragment into the template's placeholder
//
// The template must contain the placeholder exactly once; zero or
// multiple occurrences is a configuration error.
//
// # Configuration
//
// Use functional options to customize the builder:
//
//	builder := md2page.NewBuilder(
//	    md2page.WithPlaceholder("<!-- BODY -->"),
//	    md2page.WithKeepHeading(),
//	)
package md2page
