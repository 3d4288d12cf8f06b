package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/handiism/discman/internal/codec"
)

// outputDir returns dir, or the folder of the input file when dir is empty.
func outputDir(dir, input string) string {
	if dir != "" {
		return dir
	}
	return filepath.Dir(input)
}

func newExportCmd(a *app) *cobra.Command {
	var (
		outDir string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the text/HTML export of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			confirm := a.confirmOverwrite
			if force {
				confirm = func(string) bool { return true }
			}

			path, written, err := a.store.ExportText(rel, outputDir(outDir, args[0]), confirm)
			if err != nil {
				return err
			}
			if !written {
				fmt.Fprintln(a.stdout, "Export cancelled.")
				return nil
			}
			fmt.Fprintf(a.stdout, "Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output folder (default: folder of the input file)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing export without asking")
	return cmd
}

func newConvertCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Read a .txt export or .json project and save it as a JSON project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := a.store.Load(args[0])
			if err != nil {
				return err
			}
			path, err := a.store.SaveJSON(rel, outputDir(outDir, args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Saved %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output folder (default: folder of the input file)")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	var htmlOnly bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print the text export of a file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := a.store.Load(args[0])
			if err != nil {
				return err
			}

			render := codec.FormatText
			if htmlOnly {
				render = codec.FormatHTML
			}
			out, err := render(rel)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&htmlOnly, "html", false, "print only the HTML fragment")
	return cmd
}
