package engine

import (
	"math/rand"
	"time"
)

// Engine provides the main interface for Sudoku board operations
type Engine interface {
	// Board state
	Board() Grid
	Solution() Grid
	IsComplete() bool
	IsCorrect() bool

	// Placement operations
	IsValidPlacement(row, col, num int) bool
	PlaceNumber(row, col, num int) bool

	// Generation
	GenerateFullBoard()
	RemoveNumbers(difficulty Difficulty)
	RemoveCells(count int)
}

// SudokuEngine implements the Engine interface. It owns the working board
// and the immutable solution produced at generation time. The engine does
// no internal locking: each instance has a single logical owner and
// callers serialize access per instance.
type SudokuEngine struct {
	board    Grid
	solution Grid
	rng      *rand.Rand
}

// NewEngine creates an empty Sudoku engine seeded from the clock
func NewEngine() *SudokuEngine {
	return NewEngineWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewEngineWithRand creates an engine using the provided random source.
// Tests use this to make generation deterministic.
func NewEngineWithRand(rng *rand.Rand) *SudokuEngine {
	return &SudokuEngine{rng: rng}
}

// Board returns a copy of the current board state
func (e *SudokuEngine) Board() Grid {
	return e.board
}

// Solution returns a copy of the stored solution
func (e *SudokuEngine) Solution() Grid {
	return e.solution
}

// SetBoard replaces the working board. Used by tests and by callers that
// restore a known position; generation never needs it.
func (e *SudokuEngine) SetBoard(g Grid) {
	e.board = g
}

// IsValidPlacement reports whether num can legally occupy (row, col):
// num must not already appear elsewhere in the row, the column, or the
// 3x3 box containing the cell. The cell under test is excluded from the
// comparison, so re-validating a digit at its own position succeeds.
func (e *SudokuEngine) IsValidPlacement(row, col, num int) bool {
	for c := 0; c < GridSize; c++ {
		if c != col && e.board[row][c] == num {
			return false
		}
	}
	for r := 0; r < GridSize; r++ {
		if r != row && e.board[r][col] == num {
			return false
		}
	}

	boxRow := BoxSize * (row / BoxSize)
	boxCol := BoxSize * (col / BoxSize)
	for r := boxRow; r < boxRow+BoxSize; r++ {
		for c := boxCol; c < boxCol+BoxSize; c++ {
			if (r != row || c != col) && e.board[r][c] == num {
				return false
			}
		}
	}

	return true
}

// PlaceNumber attempts to write num into (row, col). Placing 0 always
// succeeds and clears the cell. A digit outside 1-9 or one that violates
// the row/column/box rules is rejected and the board is left unchanged.
func (e *SudokuEngine) PlaceNumber(row, col, num int) bool {
	if !InBounds(row, col) {
		return false
	}

	if num == EmptyCell {
		e.board[row][col] = EmptyCell
		return true
	}

	if num < 1 || num > 9 {
		return false
	}

	if !e.IsValidPlacement(row, col, num) {
		return false
	}

	e.board[row][col] = num
	return true
}

// IsComplete reports whether every cell holds a digit
func (e *SudokuEngine) IsComplete() bool {
	return e.board.EmptyCells() == 0
}

// IsCorrect reports whether the board matches the solution cell for cell.
// Callers check IsComplete first; a partially filled board that agrees
// with the solution so far is not considered correct.
func (e *SudokuEngine) IsCorrect() bool {
	return e.board == e.solution
}
