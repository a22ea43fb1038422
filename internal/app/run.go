package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/sudokufmt/internal/collector"
	"github.com/vk/sudokufmt/internal/ctxlog"
	"github.com/vk/sudokufmt/internal/grid"
)

// Labels for the two grids a solver's log stream is expected to carry.
const (
	labelInitial = "Initial grid:"
	labelSolved  = "Solved grid:"
)

// noSolvedNote is printed when the stream carried a full initial grid but
// never a solved one.
const noSolvedNote = "\nNote: no solved grid found"

// Run executes the formatter: it reads the configured input stream once,
// collects grids, and renders the first as the initial grid and the second
// as the solved grid.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	in, closeInput, err := a.openInput()
	if err != nil {
		return err
	}
	defer closeInput()

	grids, err := collector.Collect(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to collect grids: %w", err)
	}
	a.logger.Debug("Input stream collected.", "grid_count", len(grids))

	if len(grids) >= 1 {
		grid.Render(a.outW, labelInitial, grids[0])
	}
	if len(grids) >= 2 {
		grid.Render(a.outW, labelSolved, grids[1])
	} else if len(grids) == 1 && grids[0].Full() {
		// An undersized single grid prints no note.
		fmt.Fprintln(a.outW, noSolvedNote)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// openInput returns the configured input stream and a release function.
// Standard input is used when no path was configured.
func (a *App) openInput() (io.Reader, func(), error) {
	if a.config.InputPath == "" {
		a.logger.Debug("Reading integer stream from standard input.")
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(a.config.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	a.logger.Debug("Reading integer stream from file.", "path", a.config.InputPath)
	return f, func() { f.Close() }, nil
}
