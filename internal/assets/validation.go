package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName checks that a template name can be safely joined to
// the embedded templates directory. Names are bare identifiers: no path
// separators and no dots, so neither traversal nor extension tricks can
// reach outside the embedded tree.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, ".") {
		return fmt.Errorf("%w: %q contains a dot", ErrInvalidAssetName, name)
	}
	return nil
}
