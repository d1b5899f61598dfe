// Command hillclimb reports the fewest steps needed to climb an elevation
// surface: from S to E (answer 1), and from the best lowest cell to E
// (answer 2).
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/config"
	"github.com/katalvlaran/hillclimb/ctxlog"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/render"
)

//go:embed input.txt
var embeddedInput string

// main is the entrypoint for the hillclimb command.
func main() {
	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Answers go to outW, logs to errW.
func run(outW, errW io.Writer, args []string) error {
	cfg, shouldExit, err := parseArgs(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := ctxlog.New(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	g, err := loadGrid(cfg.InputPath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	logger.Debug("Surface loaded.", slog.Int("width", g.Width()), slog.Int("height", g.Height()))

	queries := climb.DefaultQueries()
	if cfg.QueriesPath != "" {
		if queries, err = config.Load(cfg.QueriesPath); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
	}
	logger.Debug("Queries ready.", slog.Int("count", len(queries)))

	routes, err := climb.SolveAll(ctx, g, queries)
	if err != nil {
		return &ExitError{Code: 1, Message: describe(err)}
	}
	for i, r := range routes {
		fmt.Fprintf(outW, "answer %d: %d\n", i+1, r.Steps)
	}

	if cfg.PNGPath != "" {
		if err := render.SavePNG(cfg.PNGPath, g, routes, render.Options{}); err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
		logger.Info("Render written.", slog.String("path", cfg.PNGPath))
	}

	return nil
}

// loadGrid reads the surface at path, or the embedded one when path is empty.
func loadGrid(path string) (*heightmap.Grid, error) {
	if path == "" {
		return heightmap.ParseString(embeddedInput)
	}
	return heightmap.ParseFile(path)
}

// describe turns query failures into user-facing messages.
func describe(err error) string {
	switch {
	case errors.Is(err, climb.ErrNoPath):
		return "no path found: " + err.Error()
	case errors.Is(err, climb.ErrMissingMarker):
		return "missing marker: " + err.Error()
	default:
		return err.Error()
	}
}
