package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/vk/sudokufmt/internal/grid"
)

// board returns n in-range cell values cycling 0..9, offset by start so
// that distinct boards stay distinguishable in diffs.
func board(start, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = (start + i) % 10
	}
	return values
}

// stream renders tokens one per line. Tokens may be ints, strings, or []int
// slices, which are expanded value by value.
func stream(tokens ...any) string {
	var sb strings.Builder
	for _, tok := range tokens {
		if values, ok := tok.([]int); ok {
			for _, v := range values {
				fmt.Fprintln(&sb, v)
			}
			continue
		}
		fmt.Fprintln(&sb, tok)
	}
	return sb.String()
}

func TestCollect(t *testing.T) {
	t.Parallel()

	first := board(1, grid.Cells)
	second := board(2, grid.Cells)
	third := board(3, grid.Cells)

	testCases := []struct {
		name  string
		input string
		want  []grid.Grid
	}{
		{
			name:  "Empty stream yields no grids",
			input: "",
			want:  nil,
		},
		{
			name:  "Blank and non-numeric lines alone yield no grids",
			input: "\nhello\n   \nworld\n",
			want:  nil,
		},
		{
			name:  "Exactly one full board without markers",
			input: stream(first),
			want:  []grid.Grid{first},
		},
		{
			name:  "Solved marker delimits the second board",
			input: stream(first, MarkerSolved, second),
			want:  []grid.Grid{first, second},
		},
		{
			name:  "Initial and solved markers delimit two boards",
			input: stream(MarkerInitial, first, MarkerSolved, second),
			want:  []grid.Grid{first, second},
		},
		{
			name:  "Non-numeric lines are ignored mid-stream",
			input: stream("solver started", first, "done in 42ms", MarkerSolved, second, "bye"),
			want:  []grid.Grid{first, second},
		},
		{
			name:  "Noise values are discarded without touching the buffer",
			input: stream(-1, first, 150, MarkerSolved, 999, second, -7),
			want:  []grid.Grid{first, second},
		},
		{
			name:  "Initial marker flushes a short buffer as-is",
			input: stream(board(5, 5), MarkerInitial, first),
			want:  []grid.Grid{board(5, 5), first},
		},
		{
			name:  "Solved marker drops a short buffer",
			input: stream(board(5, 5), MarkerSolved, first),
			want:  []grid.Grid{first},
		},
		{
			name:  "Trailing short buffer is dropped at end of stream",
			input: stream(board(1, grid.Cells-1)),
			want:  nil,
		},
		{
			name:  "Buffer is clamped to one board, trailing excess dropped",
			input: stream(board(1, grid.Cells+4)),
			want:  []grid.Grid{first},
		},
		{
			name:  "Boards are returned in completion order",
			input: stream(first, second, third),
			want:  []grid.Grid{first, second, third},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Collect(context.Background(), strings.NewReader(tc.input))
			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Collect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollect_SurroundingWhitespaceTrimmed(t *testing.T) {
	t.Parallel()

	input := "  5\t\n\t7  \n"
	got, err := Collect(context.Background(), strings.NewReader(input))
	require.NoError(t, err)

	// Two trimmed values land in the buffer; the buffer is short, so no
	// grid is collected, but the trim must not turn them into parse skips.
	require.Nil(t, got)

	padded := "  " + stream(board(1, grid.Cells))
	got, err = Collect(context.Background(), strings.NewReader(padded))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestCollect_ReadError(t *testing.T) {
	t.Parallel()

	readErr := errors.New("stream went away")
	got, err := Collect(context.Background(), iotest.ErrReader(readErr))

	require.Error(t, err)
	require.ErrorIs(t, err, readErr)
	require.Nil(t, got)
}
