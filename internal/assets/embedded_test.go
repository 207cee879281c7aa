package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTemplateDefault(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplateName, err)
	}

	if n := strings.Count(content, "<!-- README_CONTENT -->"); n != 1 {
		t.Errorf("default template contains placeholder %d times, want exactly 1", n)
	}
	if !strings.Contains(content, "<!DOCTYPE html>") {
		t.Error("default template is not a complete HTML document")
	}
}

func TestLoadTemplateUnknown(t *testing.T) {
	t.Parallel()

	_, err := LoadTemplate("nope")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestLoadTemplateInvalidName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "../landing", "a/b", "landing.html"} {
		if _, err := LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want ErrInvalidAssetName", name, err)
		}
	}
}
