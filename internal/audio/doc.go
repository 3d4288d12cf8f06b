// Package audio writes release metadata into audio files.
//
// # ID3 Tagging
//
// Use the Tagger to tag a folder of MP3 files from a release. Files are
// matched to tracks by position, so the folder listing must be in track
// order:
//
//	files, _ := audio.ListAudioFiles("/music/Hello")
//	tagger := audio.NewTagger(4, logger)
//	err := tagger.TagRelease(ctx, release, files, coverJPEG)
//
// The tagger writes:
//   - Album title (TALB) and track title (TIT2, with the (Inst) marker)
//   - Track number as "n/total" (TRCK)
//   - Year (TYER) and full date (TDRC)
//   - A "Release" comment such as "1st Single" (COMM)
//   - Cover art (APIC), when given
//
// # Playlists
//
//	content := audio.CreatePlaylist(release, files)
//	os.WriteFile(audio.PlaylistPath(dir, release), []byte(content), 0644)
package audio
