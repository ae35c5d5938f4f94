package service

import (
	"context"
	"time"

	"github.com/cityjumper/mysudoku/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Game lifecycle
	CreateGame(ctx context.Context, difficulty string) (*GameInfo, error)
	GetGame(ctx context.Context, gameID string) (*GameInfo, error)
	ListGames(ctx context.Context) (*GameList, error)
	DeleteGame(ctx context.Context, gameID string) error

	// Play
	PlaceNumber(ctx context.Context, gameID string, row, col, num int) (*MoveResult, error)
	GetSolution(ctx context.Context, gameID string) (*SolutionInfo, error)
	Validate(ctx context.Context, gameID string) (*ValidationResult, error)

	// Difficulty profiles
	ListDifficulties(ctx context.Context) ([]*DifficultyInfo, error)
}

// SessionRegistry defines session storage operations
type SessionRegistry interface {
	Create(id, difficulty string, removeCount int) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Count() int
}

// DifficultyManager resolves difficulty names to removal profiles
type DifficultyManager interface {
	// Resolve maps a difficulty name to its canonical id and rolls a
	// removal count from the profile's range. Unknown names fall back
	// to a fixed-count profile rather than failing.
	Resolve(name string) (id string, removeCount int)
	List() []*DifficultyInfo
	Default() string
}

// Session represents one player's in-progress puzzle
type Session struct {
	ID             string
	Engine         *engine.SudokuEngine
	Difficulty     string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
