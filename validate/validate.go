// Package validate checks Sudoku grids against the standard constraints.
// It scans rows, columns, and 3x3 boxes for duplicate digits and reports
// the offending cells, independent of any stored solution. The service
// layer uses it to enrich validation responses with conflict listings,
// and the generator tests use it to assert solution validity.
package validate

import "github.com/cityjumper/mysudoku/game/engine"

// Conflicts returns every cell that holds a digit duplicated within its
// row, column, or box. Empty cells never conflict. Each cell appears at
// most once, in row-major order.
func Conflicts(g engine.Grid) []engine.Cell {
	conflicted := [engine.GridSize][engine.GridSize]bool{}

	// Rows
	for r := 0; r < engine.GridSize; r++ {
		var seen [10][]int // digit -> columns holding it
		for c := 0; c < engine.GridSize; c++ {
			if v := g[r][c]; v != engine.EmptyCell {
				seen[v] = append(seen[v], c)
			}
		}
		for v := 1; v <= 9; v++ {
			if len(seen[v]) > 1 {
				for _, c := range seen[v] {
					conflicted[r][c] = true
				}
			}
		}
	}

	// Columns
	for c := 0; c < engine.GridSize; c++ {
		var seen [10][]int // digit -> rows holding it
		for r := 0; r < engine.GridSize; r++ {
			if v := g[r][c]; v != engine.EmptyCell {
				seen[v] = append(seen[v], r)
			}
		}
		for v := 1; v <= 9; v++ {
			if len(seen[v]) > 1 {
				for _, r := range seen[v] {
					conflicted[r][c] = true
				}
			}
		}
	}

	// Boxes
	for boxRow := 0; boxRow < engine.GridSize; boxRow += engine.BoxSize {
		for boxCol := 0; boxCol < engine.GridSize; boxCol += engine.BoxSize {
			var seen [10][]engine.Cell
			for r := boxRow; r < boxRow+engine.BoxSize; r++ {
				for c := boxCol; c < boxCol+engine.BoxSize; c++ {
					if v := g[r][c]; v != engine.EmptyCell {
						seen[v] = append(seen[v], engine.Cell{Row: r, Col: c})
					}
				}
			}
			for v := 1; v <= 9; v++ {
				if len(seen[v]) > 1 {
					for _, cell := range seen[v] {
						conflicted[cell.Row][cell.Col] = true
					}
				}
			}
		}
	}

	var cells []engine.Cell
	for r := 0; r < engine.GridSize; r++ {
		for c := 0; c < engine.GridSize; c++ {
			if conflicted[r][c] {
				cells = append(cells, engine.Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasConflicts reports whether any constraint is violated
func HasConflicts(g engine.Grid) bool {
	return len(Conflicts(g)) > 0
}

// IsValidSolution reports whether g is a fully filled grid in which every
// row, column, and box is a permutation of 1-9.
func IsValidSolution(g engine.Grid) bool {
	if g.EmptyCells() != 0 {
		return false
	}
	return !HasConflicts(g)
}
