// Package pipeline implements the README-to-landing-page build pipeline.
//
// This package handles the three stages between reading the inputs and
// writing the output:
//   - Leading heading/tagline trimming (the template header already
//     presents the project name and tagline)
//   - Markdown to HTML conversion via Goldmark
//   - Placeholder substitution into the HTML template
//
// File I/O and CLI concerns are handled by the root md2page package and
// cmd/md2page. This separation keeps the pipeline focused on pure text
// transformations.
package pipeline
