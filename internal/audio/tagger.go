package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bogem/id3v2"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/handiism/discman/internal/codec"
	"github.com/handiism/discman/internal/model"
)

// ReleaseCommentDescription is the description of the COMM frame holding the
// release heading ("1st Single").
const ReleaseCommentDescription = "Release"

// Tagger writes ID3 tags to MP3 files.
//
// Example:
//
//	tagger := NewTagger(4, logger)
//	if err := tagger.TagRelease(ctx, rel, files, nil); err != nil {
//	    log.Printf("tagging failed: %v", err)
//	}
type Tagger struct {
	workers int
	logger  *log.Logger
}

// NewTagger creates a Tagger that tags up to workers files at a time.
func NewTagger(workers int, logger *log.Logger) *Tagger {
	if workers < 1 {
		workers = 1
	}
	return &Tagger{workers: workers, logger: logger}
}

// ListAudioFiles returns the .mp3 files of dir sorted by name.
func ListAudioFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".mp3") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// TagRelease writes the tags of rel into files. files[i] gets the tags of
// rel.Tracks[i]; the counts must match. artwork is JPEG data for the front
// cover, or nil to leave pictures alone.
//
// Tagging stops at the first failure and that error is returned.
func (t *Tagger) TagRelease(ctx context.Context, rel *model.Release, files []string, artwork []byte) error {
	if len(files) != len(rel.Tracks) {
		return fmt.Errorf("release has %d tracks but %d audio files were given", len(rel.Tracks), len(files))
	}

	heading := rel.Type
	if order, err := codec.ParseOrder(rel.Order); err == nil {
		heading = codec.Ordinal(order) + " " + rel.Type
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	for i, path := range files {
		i, path := i, path // capture
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := t.tagFile(path, rel, i, heading, artwork); err != nil {
				return fmt.Errorf("tag %s: %w", filepath.Base(path), err)
			}
			t.logger.Debug("tagged", "path", path, "track", i+1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	t.logger.Info("tagged release", "title", rel.Title, "files", len(files))
	return nil
}

func (t *Tagger) tagFile(path string, rel *model.Release, index int, heading string, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetDefaultEncoding(id3v2.EncodingUTF8)

	track := rel.Tracks[index]
	tag.SetAlbum(rel.Title)
	tag.SetTitle(track.Label())

	tag.DeleteFrames("TRCK")
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8, fmt.Sprintf("%d/%d", index+1, len(rel.Tracks)))

	tag.DeleteFrames("TYER")
	tag.AddTextFrame("TYER", id3v2.EncodingUTF8, rel.Year)

	tag.DeleteFrames("TDRC")
	tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, fmt.Sprintf("%s-%s-%s", rel.Year, rel.Month, rel.Day))

	tag.DeleteFrames(tag.CommonID("Comments"))
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: ReleaseCommentDescription,
		Text:        heading,
	})

	if artwork != nil {
		updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateArtwork embeds cover art as an attached picture frame.
func updateArtwork(tag *id3v2.Tag, artwork []byte) {
	// Remove any existing cover pictures
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	})
}
