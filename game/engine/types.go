package engine

import "strings"

// Difficulty names a removal profile for puzzle generation
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	// Board geometry constants
	GridSize  = 9
	BoxSize   = 3
	EmptyCell = 0

	// TotalCells is the number of cells on a standard board
	TotalCells = GridSize * GridSize
)

// Grid is a 9x9 Sudoku grid. 0 marks an empty cell, 1-9 a placed digit.
// Grid has value semantics: assigning or returning one yields an
// independent copy, so callers can never mutate engine state through it.
type Grid [GridSize][GridSize]int

// Cell identifies a single board position
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// EmptyCells returns the number of cells still holding 0
func (g *Grid) EmptyCells() int {
	count := 0
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if g[r][c] == EmptyCell {
				count++
			}
		}
	}
	return count
}

// InBounds reports whether (row, col) addresses a cell on the board
func InBounds(row, col int) bool {
	return row >= 0 && row < GridSize && col >= 0 && col < GridSize
}

// ParseDifficulty maps a difficulty name onto a known Difficulty,
// ignoring case. The second return value is false for unrecognized names.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(s))
	switch d {
	case Easy, Medium, Hard:
		return d, true
	default:
		return d, false
	}
}

// RemovalRange returns the min/max number of cells blanked for a difficulty.
// Unrecognized difficulties get a fixed count of 40.
func RemovalRange(d Difficulty) (min, max int) {
	switch d {
	case Easy:
		return 30, 35
	case Medium:
		return 40, 45
	case Hard:
		return 50, 55
	default:
		return 40, 40
	}
}
