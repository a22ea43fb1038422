// Package grid defines the 9x9 sudoku board representation and its
// fixed-width table renderer.
package grid
