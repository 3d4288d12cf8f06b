package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/handiism/discman/internal/config"
	"github.com/handiism/discman/internal/logging"
	"github.com/handiism/discman/internal/project"
	"github.com/handiism/discman/internal/tui"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	envFile    string

	settings *config.Settings
	logger   *log.Logger
	store    *project.Store

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	return newRootCmdFor(&app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr})
}

func newRootCmdFor(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "discman [file]",
		Short: "Discography Manager - edit release metadata and export it as JSON or text",
		Long: "discman keeps release metadata (date, order, type, title and track list)\n" +
			"in JSON project files and exports a text/HTML snippet for web pages.\n\n" +
			"Run without a subcommand to open the editor.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEditor(args)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to settings file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with DISCMAN_* overrides")

	root.AddCommand(
		newEditCmd(a),
		newExportCmd(a),
		newConvertCmd(a),
		newShowCmd(a),
		newTagCmd(a),
		newWatchCmd(a),
		newOrdinalCmd(a),
	)
	return root
}

// setup loads settings and builds the logger and store.
func (a *app) setup() error {
	settings, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := settings.ApplyEnv(a.envFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	if a.logLevel != "" {
		settings.LogLevel = a.logLevel
	}

	logger, err := logging.New(a.stderr, settings.LogLevel)
	if err != nil {
		return err
	}

	a.settings = settings
	a.logger = logger
	a.store = project.NewStore(logger)
	return nil
}

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Open the editor, optionally loading a .json or .txt file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEditor(args)
		},
	}
}

// runEditor starts the TUI. Logs go to the configured log file because the
// editor owns the terminal.
func (a *app) runEditor(args []string) error {
	logger, closer, err := logging.OpenFile(a.settings.LogFile, a.settings.LogLevel)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	var path string
	if len(args) > 0 {
		path = args[0]
	}
	return tui.Run(a.settings, project.NewStore(logger), path)
}

// confirmOverwrite asks on stdin whether path may be replaced.
func (a *app) confirmOverwrite(path string) bool {
	fmt.Fprintf(a.stdout, "%s already exists. Overwrite? [y/N] ", path)
	line, _ := bufio.NewReader(a.stdin).ReadString('\n')
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
