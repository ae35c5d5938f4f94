package service

import (
	"time"

	"github.com/cityjumper/mysudoku/game/engine"
)

// GameInfo provides the externally visible state of a game session
type GameInfo struct {
	GameID         string      `json:"game_id"`
	Board          engine.Grid `json:"board"`
	Difficulty     string      `json:"difficulty"`
	IsComplete     bool        `json:"is_complete"`
	IsCorrect      bool        `json:"is_correct"`
	EmptyCells     int         `json:"empty_cells"`
	CreatedAt      time.Time   `json:"created_at"`
	LastAccessedAt time.Time   `json:"last_accessed_at"`
	Message        string      `json:"message,omitempty"`
}

// MoveResult contains the result of a placement attempt
type MoveResult struct {
	Success    bool        `json:"success"`
	Board      engine.Grid `json:"board"`
	IsComplete bool        `json:"is_complete"`
	IsCorrect  bool        `json:"is_correct"`
	Message    string      `json:"message"`
}

// SolutionInfo carries the full solution grid for a game
type SolutionInfo struct {
	GameID   string      `json:"game_id"`
	Solution engine.Grid `json:"solution"`
}

// ValidationResult reports whether the current board is the solution.
// Valid is only true for a complete board matching the stored solution;
// Conflicts lists cells that break a row/column/box constraint, which a
// complete-but-wrong board may or may not have.
type ValidationResult struct {
	Valid     bool          `json:"valid"`
	Complete  bool          `json:"complete"`
	Message   string        `json:"message"`
	Conflicts []engine.Cell `json:"conflicts,omitempty"`
}

// GameList summarizes the active games
type GameList struct {
	Count   int      `json:"count"`
	GameIDs []string `json:"game_ids"`
}

// DifficultyInfo describes a difficulty profile
type DifficultyInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MinRemoved  int    `json:"min_removed"`
	MaxRemoved  int    `json:"max_removed"`
	Default     bool   `json:"default,omitempty"`
}
