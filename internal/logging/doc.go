// Package logging builds the charmbracelet/log logger used by discman.
//
// The CLI logs to stderr:
//
//	logger, err := logging.New(os.Stderr, settings.LogLevel)
//
// The editor owns the terminal, so it logs to a file or nowhere:
//
//	logger, closer, err := logging.OpenFile(settings.LogFile, settings.LogLevel)
package logging
