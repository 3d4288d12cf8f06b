package ioutils

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
)

var illegalNameChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// SanitizeTitle removes the characters \ / * ? : " < > | from a title so it
// can be used as a file name. Nothing else is changed.
//
// Example:
//
//	SanitizeTitle("My/Album:Name?") // Returns "MyAlbumName"
func SanitizeTitle(title string) string {
	return illegalNameChars.ReplaceAllString(title, "")
}

// ExportFileName returns the sanitized title plus ext, or fallback plus ext
// when the sanitized title is empty.
func ExportFileName(title, ext, fallback string) string {
	name := SanitizeTitle(title)
	if name == "" {
		name = fallback
	}
	return name + ext
}

// WriteFile writes data to path in one go, creating or truncating it.
// The file is created with mode 0644.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// Exists reports whether something exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
