package assets

import (
	"errors"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "landing", wantErr: false},
		{name: "hyphenated", input: "my-landing", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "dot traversal", input: "..", wantErr: true},
		{name: "slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "extension", input: "landing.html", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) error = %v, want nil", tt.input, err)
			}
		})
	}
}
