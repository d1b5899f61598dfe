package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/hillclimb/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config holds everything run needs from the command line.
type Config struct {
	InputPath   string
	QueriesPath string
	PNGPath     string
	LogLevel    slog.Level
	LogFormat   ctxlog.Format
}

// parseArgs processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("hillclimb", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
hillclimb - fewest steps across an elevation surface.

Usage:
  hillclimb [options]

Without options the built-in surface is solved and two answers are printed.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to a surface file. Empty uses the built-in surface.")
	queriesFlag := flagSet.String("queries", "", "Path to an HCL query file. Empty runs the summit and trailhead queries.")
	pngFlag := flagSet.String("png", "", "Write a PNG render of the surface and routes to this path.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %v", flagSet.Args())}
	}

	logFormat, err := ctxlog.ParseFormat(*logFormatFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	var logLevel slog.Level
	switch strings.ToLower(*logLevelFlag) {
	case "debug", "info", "warn", "error":
		_ = logLevel.UnmarshalText([]byte(*logLevelFlag))
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		InputPath:   *inputFlag,
		QueriesPath: *queriesFlag,
		PNGPath:     *pngFlag,
		LogLevel:    logLevel,
		LogFormat:   logFormat,
	}, false, nil
}
