package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/discman/internal/io"
	"github.com/handiism/discman/internal/model"
)

// PlaylistPath returns the M3U path for rel inside dir.
func PlaylistPath(dir string, rel *model.Release) string {
	return filepath.Join(dir, ioutils.ExportFileName(rel.Title, ".m3u", "playlist"))
}

// CreatePlaylist renders an extended M3U playlist of files, which must be in
// track order. Paths are written relative (base name only), assuming the
// playlist sits next to the audio files.
//
//	#EXTM3U
//	#PLAYLIST:Hello
//	#EXTINF:-1,Hello
//	01 Hello.mp3
func CreatePlaylist(rel *model.Release, files []string) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	sb.WriteString(fmt.Sprintf("#PLAYLIST:%s\n", rel.Title))

	for i, f := range files {
		title := filepath.Base(f)
		if i < len(rel.Tracks) {
			title = rel.Tracks[i].Label()
		}
		sb.WriteString(fmt.Sprintf("#EXTINF:-1,%s\n", title))
		sb.WriteString(filepath.Base(f) + "\n")
	}

	return sb.String()
}
