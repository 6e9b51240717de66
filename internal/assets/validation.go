package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName reports whether name can be used as a bare file name
// under styles/ or templates/. Separators and dots are rejected, so a name
// can neither leave the directory nor change the extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
