package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/handiism/discman/internal/codec"
	ioutils "github.com/handiism/discman/internal/io"
	"github.com/handiism/discman/internal/model"
)

// File extensions and fallback names for files derived from a title.
const (
	JSONExt = ".json"
	TextExt = ".txt"

	JSONFallbackName = "project"
	TextFallbackName = "output"
)

// ConfirmFunc is asked before an existing export is overwritten.
type ConfirmFunc func(path string) bool

// Store performs the file operations of a release. It keeps no state
// besides its logger, so the release passed in is the only data written.
type Store struct {
	logger *log.Logger
}

// NewStore creates a Store logging to logger.
func NewStore(logger *log.Logger) *Store {
	return &Store{logger: logger}
}

// Validate checks that every header field is filled in and, when
// requireTracks is set, that there is at least one track.
func Validate(rel *model.Release, requireTracks bool) error {
	if missing := rel.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: fill in all basic fields (%s)", ErrMissingField, strings.Join(missing, ", "))
	}
	if requireTracks && len(rel.Tracks) == 0 {
		return fmt.Errorf("%w: add at least one track", ErrMissingField)
	}
	return nil
}

// CheckDestination returns ErrInvalidDestination unless dir is an existing
// directory.
func CheckDestination(dir string) error {
	if !ioutils.IsDir(strings.TrimSpace(dir)) {
		return fmt.Errorf("%w: %s", ErrInvalidDestination, dir)
	}
	return nil
}

// JSONPath returns where SaveJSON writes rel inside dir.
func JSONPath(rel *model.Release, dir string) string {
	return filepath.Join(strings.TrimSpace(dir), ioutils.ExportFileName(rel.Title, JSONExt, JSONFallbackName))
}

// TextPath returns where ExportText writes rel inside dir.
func TextPath(rel *model.Release, dir string) string {
	return filepath.Join(strings.TrimSpace(dir), ioutils.ExportFileName(rel.Title, TextExt, TextFallbackName))
}

// SaveJSON writes rel as a project file into dir and returns its path.
// An existing file is replaced.
func (s *Store) SaveJSON(rel *model.Release, dir string) (string, error) {
	if err := Validate(rel, false); err != nil {
		return "", err
	}
	if err := CheckDestination(dir); err != nil {
		return "", err
	}

	data, err := codec.EncodeJSON(rel)
	if err != nil {
		return "", fmt.Errorf("%w: encode project: %v", ErrIO, err)
	}

	path := JSONPath(rel, dir)
	if err := ioutils.WriteFile(path, data); err != nil {
		s.logger.Warn("save failed", "path", path, "err", err)
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.logger.Info("saved project", "path", path, "tracks", len(rel.Tracks))
	return path, nil
}

// ExportText writes the text export of rel into dir.
//
// If the target already exists, confirm decides whether to overwrite it; a
// nil confirm never overwrites. When the user declines, written is false and
// the error is nil.
func (s *Store) ExportText(rel *model.Release, dir string, confirm ConfirmFunc) (path string, written bool, err error) {
	if err := Validate(rel, true); err != nil {
		return "", false, err
	}

	if err := CheckDestination(dir); err != nil {
		return "", false, err
	}

	content, err := codec.FormatText(rel)
	if err != nil {
		return "", false, err
	}

	path = TextPath(rel, dir)
	exists, err := ioutils.Exists(path)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if exists && (confirm == nil || !confirm(path)) {
		s.logger.Info("export skipped", "path", path)
		return path, false, nil
	}

	if err := ioutils.WriteFile(path, []byte(content)); err != nil {
		s.logger.Warn("export failed", "path", path, "err", err)
		return "", false, fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.logger.Info("exported text", "path", path, "tracks", len(rel.Tracks))
	return path, true, nil
}

// Load reads a release from path. Files ending in .json (any case) are read
// as projects, everything else as text exports. The release is fully parsed
// before it is returned, so a failed load has no partial result.
func (s *Store) Load(path string) (*model.Release, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Warn("load failed", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	var rel *model.Release
	if strings.EqualFold(filepath.Ext(path), JSONExt) {
		rel, err = codec.DecodeJSON(data)
	} else {
		rel, err = codec.ParseText(string(data))
	}
	if err != nil {
		s.logger.Warn("load failed", "path", path, "err", err)
		return nil, err
	}

	s.logger.Info("loaded", "path", path, "tracks", len(rel.Tracks))
	return rel, nil
}
