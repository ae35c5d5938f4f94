// Package engine provides the core Sudoku board logic.
//
// The engine package implements:
//   - Full-board generation (diagonal box pre-fill plus backtracking solve)
//   - Difficulty-driven cell removal
//   - Move validation against row, column, and 3x3 box constraints
//   - Completion and correctness checks against the stored solution
//
// Core Types:
//
// The Engine interface defines the contract for board operations,
// implemented by SudokuEngine. Grid is the 9x9 board representation,
// using 0 for empty cells and 1-9 for placed digits.
//
// Usage:
//
//	eng := engine.NewEngine()
//	eng.GenerateFullBoard()
//	eng.RemoveNumbers(engine.Medium)
//
//	// Attempt a placement
//	ok := eng.PlaceNumber(0, 0, 5)
//	board := eng.Board()
//
// Rules:
//
// A digit may occupy a cell only if it does not already appear elsewhere
// in the same row, column, or 3x3 box. Placing 0 clears a cell and is
// always allowed. The engine draws no distinction between given cells and
// player-filled cells: any cell may be overwritten or cleared.
//
// The engine holds no locks. Each instance belongs to a single session
// and callers serialize access to it.
package engine
