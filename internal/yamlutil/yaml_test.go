package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: landing\ncount: 2\n"), &s); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if s.Name != "landing" || s.Count != 2 {
		t.Errorf("UnmarshalStrict() = %+v, want {landing 2}", s)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &s); err == nil {
		t.Fatal("UnmarshalStrict() expected error for unknown field, got nil")
	}
}

func TestUnmarshalStrictValidation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("UnmarshalStrict(nil) error = %v, want ErrEmptyInput", err)
	}
	if err := UnmarshalStrict([]byte("name: x"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("UnmarshalStrict(.., nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalStrictTooLarge(t *testing.T) {
	// Not parallel: mutates the MaxInputSize package variable.
	old := MaxInputSize
	MaxInputSize = 8
	defer func() { MaxInputSize = old }()

	var s sample
	err := UnmarshalStrict([]byte(strings.Repeat("a", 16)), &s)
	if !errors.Is(err, ErrInputTooLarge) {
		t.Fatalf("UnmarshalStrict() error = %v, want ErrInputTooLarge", err)
	}
}
