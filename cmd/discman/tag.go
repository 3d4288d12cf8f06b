package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/handiism/discman/internal/audio"
	ioutils "github.com/handiism/discman/internal/io"
)

func newTagCmd(a *app) *cobra.Command {
	var (
		cover    string
		playlist bool
	)

	cmd := &cobra.Command{
		Use:   "tag <file> <mp3-dir>",
		Short: "Write release metadata into the ID3 tags of a folder of MP3 files",
		Long: "Files are matched to tracks in lexical order of their names, so the\n" +
			"folder must contain exactly one .mp3 file per track.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			rel, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			dir := args[1]
			files, err := audio.ListAudioFiles(dir)
			if err != nil {
				return err
			}

			var artwork []byte
			if cover != "" {
				artwork, err = ioutils.NewImageService().LoadCover(ctx, cover, a.settings.CoverMaxSize)
				if err != nil {
					return err
				}
			}

			tagger := audio.NewTagger(a.settings.Workers(), a.logger)
			if err := tagger.TagRelease(ctx, rel, files, artwork); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Tagged %d files in %s\n", len(files), dir)

			if playlist || a.settings.WritePlaylist {
				path := audio.PlaylistPath(dir, rel)
				if err := ioutils.WriteFile(path, []byte(audio.CreatePlaylist(rel, files))); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "Wrote %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cover, "cover", "", "cover image to embed (JPEG or PNG)")
	cmd.Flags().BoolVar(&playlist, "playlist", false, "also write an .m3u playlist into the folder")
	return cmd
}
