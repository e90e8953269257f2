package common

import (
	"path/filepath"
	"strings"
)

// ImageExtensions lists the file extensions recognized as images, lowercase.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif"}

// IsImageFormat checks the extension of a file path or URL against ImageExtensions, ignoring case.
func IsImageFormat(path string) bool {
	extension := strings.ToLower(filepath.Ext(path))
	for _, imageExtension := range ImageExtensions {
		if extension == imageExtension {
			return true
		}
	}
	return false
}
