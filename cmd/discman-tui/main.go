package main

import (
	"fmt"
	"os"

	"github.com/handiism/discman/internal/config"
	"github.com/handiism/discman/internal/logging"
	"github.com/handiism/discman/internal/project"
	"github.com/handiism/discman/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(".env"); err != nil {
		return err
	}

	logger, closer, err := logging.OpenFile(settings.LogFile, settings.LogLevel)
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
	return tui.Run(settings, project.NewStore(logger), path)
}
