package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

// DefaultTemplateName is the embedded template used when none is configured.
const DefaultTemplateName = "landing"

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}
