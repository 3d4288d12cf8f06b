package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/handiism/discman/internal/project"
)

func newWatchCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "watch <project.json>",
		Short: "Re-export the text file every time the project changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			input := args[0]
			if !strings.EqualFold(filepath.Ext(input), project.JSONExt) {
				return fmt.Errorf("watch needs a %s project file, got %s", project.JSONExt, input)
			}
			dir := outputDir(outDir, input)
			always := func(string) bool { return true }

			export := func(path string) {
				rel, err := a.store.Load(path)
				if err != nil {
					a.logger.Error("reload failed", "path", path, "error", err)
					return
				}
				if sameFile(project.TextPath(rel, dir), path) {
					a.logger.Error("export would overwrite the watched file", "path", path)
					return
				}
				out, _, err := a.store.ExportText(rel, dir, always)
				if err != nil {
					a.logger.Error("export failed", "path", path, "error", err)
					return
				}
				fmt.Fprintf(a.stdout, "Exported %s\n", out)
			}

			export(input)
			return a.store.Watch(ctx, input, export)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output folder (default: folder of the project)")
	return cmd
}

// sameFile reports whether a and b name the same path once made absolute.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
