package grid

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Placeholder is displayed for empty cells and for cells beyond an
// undersized grid's length.
const Placeholder = "."

const (
	headerRuleLen    = 37
	separatorRuleLen = 35
)

// Render writes the grid to w as a bordered table under the given label,
// with separator lines between the 3x3 blocks. The layout is literal;
// downstream consumers may parse it byte for byte, so it must not change.
func Render(w io.Writer, label string, g Grid) {
	rule := strings.Repeat("=", headerRuleLen)
	fmt.Fprintf(w, "\n%s\n%s\n%s\n", rule, label, rule)

	for i := 0; i < Size; i++ {
		if i > 0 && i%BoxSize == 0 {
			fmt.Fprintln(w, strings.Repeat("-", separatorRuleLen))
		}

		var row strings.Builder
		row.WriteString("| ")
		for j := 0; j < Size; j++ {
			if j > 0 && j%BoxSize == 0 {
				row.WriteString("| ")
			}
			fmt.Fprintf(&row, "%2s ", displayValue(g, i, j))
		}
		row.WriteString("|")
		fmt.Fprintln(w, row.String())
	}

	fmt.Fprintf(w, "%s\n\n", rule)
}

// displayValue formats a single cell, substituting the placeholder for
// empty and missing cells.
func displayValue(g Grid, row, col int) string {
	value, ok := g.Cell(row, col)
	if !ok || value == 0 {
		return Placeholder
	}
	return strconv.Itoa(value)
}
