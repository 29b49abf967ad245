package images

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// Allowed reports whether the upload has an accepted image extension.
func Allowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// StoredName returns a collision-free filename for an uploaded image,
// keeping the original extension.
func StoredName(original string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(original))
}
