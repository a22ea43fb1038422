package grid

const (
	// BoxSize is the number of cells spanning each box, and the number of
	// boxes spanning the board.
	BoxSize = 3

	// Size is the number of cells spanning the board.
	Size = BoxSize * BoxSize

	// Cells is the total number of cells on the board.
	Cells = Size * Size
)

// Grid is a flattened row-major sequence of cell values for a 9x9 board;
// index i maps to row i/9, column i%9. A value of 0 means the cell is empty.
//
// A Grid may hold fewer than Cells values when its boundary marker arrived
// before the board filled up; the renderer pads the missing tail with
// placeholders.
type Grid []int

// Cell returns the value at (row, col) and whether that position is present
// in the underlying sequence.
func (g Grid) Cell(row, col int) (int, bool) {
	idx := row*Size + col
	if idx < 0 || idx >= len(g) {
		return 0, false
	}
	return g[idx], true
}

// Full reports whether the grid holds a complete board.
func (g Grid) Full() bool {
	return len(g) == Cells
}
