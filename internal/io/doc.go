// Package ioutils provides file system and image helpers for discman.
//
// This package contains functions for:
//   - Deriving export file names from a release title
//   - Whole-file writes and existence checks
//   - Cover art resizing and JPEG conversion
//
// # File Names
//
// SanitizeTitle strips characters that are illegal in file names on common
// file systems. ExportFileName adds the extension and falls back to a fixed
// name when nothing is left:
//
//	ioutils.ExportFileName("My/Album:Name?", ".txt", "output") // "MyAlbumName.txt"
//	ioutils.ExportFileName("???", ".txt", "output")            // "output.txt"
//
// # Cover Art
//
//	svc := ioutils.NewImageService()
//	jpeg, err := svc.PrepareCover(ctx, pngData, 1000)
package ioutils
