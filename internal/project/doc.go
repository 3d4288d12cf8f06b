// Package project saves, exports and loads release files.
//
// A Store turns a release snapshot into files and back:
//
//	store := project.NewStore(logger)
//	path, err := store.SaveJSON(rel, dir)          // <title>.json, replaced silently
//	path, written, err := store.ExportText(rel, dir, confirm)
//	rel, err := store.Load("Hello.json")           // .txt and others parse as text exports
//
// # Errors
//
// Failures wrap one of ErrMissingField, ErrInvalidDestination,
// ErrInvalidOrderNumber, ErrFileFormat or ErrIO, so callers can use
// errors.Is to pick a message. Checks run in that order: fields, then the
// destination folder, then the order number.
//
// # Watching
//
// Watch calls back whenever a file is written, which lets a caller re-export
// a project each time it is saved elsewhere.
package project
