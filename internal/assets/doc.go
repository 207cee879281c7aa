// Package assets provides the embedded default landing page template.
//
// The CLI falls back to the embedded template when no template path is
// given, so a project can render a landing page without shipping its
// own HTML first.
package assets
