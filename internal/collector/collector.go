// Package collector partitions a line-oriented integer stream into sudoku
// grids using sentinel marker values as grid boundaries.
package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/sudokufmt/internal/ctxlog"
	"github.com/vk/sudokufmt/internal/grid"
)

// Sentinel values recognized in the input stream. They delimit grids and
// are never stored as cell values.
const (
	// MarkerInitial starts a new grid, flushing the buffer at whatever
	// length it currently holds.
	MarkerInitial = 100

	// MarkerSolved starts a new grid, flushing the buffer only when it
	// holds a full board.
	MarkerSolved = 200
)

// Collect reads integer lines from r until end of stream and partitions
// them into grids, returned in completion order. Surrounding whitespace is
// trimmed; blank lines and lines that do not parse as integers are skipped
// without error. Negative values, and values of 100 and above other than
// the two markers, are noise and are dropped without touching the buffer.
//
// Every flush point clamps the buffer to exactly grid.Cells values, except
// the MarkerInitial branch, which collects the buffer as-is and may
// therefore yield an undersized grid. A trailing buffer shorter than a full
// board is discarded when the stream ends.
//
// The only error condition is a failing read on the underlying stream.
func Collect(ctx context.Context, r io.Reader) ([]grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)

	var grids []grid.Grid
	var buffer []int

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		value, err := strconv.Atoi(line)
		if err != nil {
			logger.Debug("Skipping non-numeric line.", "line", line)
			continue
		}

		switch {
		case value == MarkerInitial:
			if len(buffer) > 0 {
				grids = append(grids, grid.Grid(buffer))
			}
			buffer = nil
		case value == MarkerSolved:
			if len(buffer) >= grid.Cells {
				grids = append(grids, grid.Grid(buffer[:grid.Cells]))
			}
			buffer = nil
		case value < 0 || value > MarkerInitial:
			logger.Debug("Discarding unrecognized marker value.", "value", value)
		default:
			buffer = append(buffer, value)
			if len(buffer) >= grid.Cells {
				grids = append(grids, grid.Grid(buffer[:grid.Cells]))
				buffer = nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input stream: %w", err)
	}

	if len(buffer) >= grid.Cells {
		grids = append(grids, grid.Grid(buffer[:grid.Cells]))
	}

	logger.Debug("Stream collection finished.", "grid_count", len(grids))
	return grids, nil
}
