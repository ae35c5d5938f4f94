package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cityjumper/mysudoku/validate"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions     SessionRegistry
	difficulties DifficultyManager
	mu           sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionRegistry, difficulties DifficultyManager) GameService {
	return &gameServiceImpl{
		sessions:     sessions,
		difficulties: difficulties,
	}
}

// CreateGame generates a fresh puzzle at the requested difficulty and
// registers it under a newly minted identifier. An empty difficulty uses
// the default profile; an unrecognized one falls back to a fixed removal
// count but keeps the requested tag.
func (s *gameServiceImpl) CreateGame(ctx context.Context, difficulty string) (*GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if difficulty == "" {
		difficulty = s.difficulties.Default()
	}
	id, removeCount := s.difficulties.Resolve(difficulty)

	sess, err := s.sessions.Create("", id, removeCount)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	info := s.gameInfo(sess)
	info.Message = fmt.Sprintf("New %s game created successfully", sess.Difficulty)
	return info, nil
}

// GetGame retrieves the current state of a game
func (s *gameServiceImpl) GetGame(ctx context.Context, gameID string) (*GameInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(gameID)
	return s.gameInfo(sess), nil
}

// ListGames returns the identifiers of all active games, most recently
// accessed first
func (s *gameServiceImpl) ListGames(ctx context.Context) (*GameList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LastAccessedAt.After(sessions[j].LastAccessedAt)
	})

	ids := make([]string, 0, len(sessions))
	for _, sess := range sessions {
		ids = append(ids, sess.ID)
	}

	return &GameList{Count: len(ids), GameIDs: ids}, nil
}

// DeleteGame removes a game
func (s *gameServiceImpl) DeleteGame(ctx context.Context, gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(gameID)
}

// PlaceNumber attempts a single-cell placement (or clear, with num 0).
// A rejected move is a normal outcome: Success is false and the board is
// returned unchanged, never an error.
func (s *gameServiceImpl) PlaceNumber(ctx context.Context, gameID string, row, col, num int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(gameID)

	success := sess.Engine.PlaceNumber(row, col, num)
	if !success {
		return &MoveResult{
			Success:    false,
			Board:      sess.Engine.Board(),
			IsComplete: sess.Engine.IsComplete(),
			IsCorrect:  false,
			Message:    fmt.Sprintf("Invalid move: cannot place %d at (%d, %d)", num, row, col),
		}, nil
	}

	complete := sess.Engine.IsComplete()
	correct := complete && sess.Engine.IsCorrect()

	message := "Move successful"
	if complete {
		if correct {
			message = "Congratulations! You solved the puzzle correctly!"
		} else {
			message = "Puzzle complete but solution is incorrect. Try again!"
		}
	}

	return &MoveResult{
		Success:    true,
		Board:      sess.Engine.Board(),
		IsComplete: complete,
		IsCorrect:  correct,
		Message:    message,
	}, nil
}

// GetSolution returns the stored solution for a game
func (s *gameServiceImpl) GetSolution(ctx context.Context, gameID string) (*SolutionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(gameID)
	return &SolutionInfo{GameID: sess.ID, Solution: sess.Engine.Solution()}, nil
}

// Validate checks the current board against the stored solution. An
// incomplete board is reported as neither valid nor complete. For a
// complete board the conflict scan supplies cell-level diagnostics when
// the attempt does not match the solution.
func (s *gameServiceImpl) Validate(ctx context.Context, gameID string) (*ValidationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(gameID)
	if err != nil {
		return nil, fmt.Errorf("game not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(gameID)

	if !sess.Engine.IsComplete() {
		return &ValidationResult{
			Valid:    false,
			Complete: false,
			Message:  "Puzzle is not yet complete",
		}, nil
	}

	if sess.Engine.IsCorrect() {
		return &ValidationResult{
			Valid:    true,
			Complete: true,
			Message:  "Solution is correct!",
		}, nil
	}

	return &ValidationResult{
		Valid:     false,
		Complete:  true,
		Message:   "Solution is incorrect. Keep trying!",
		Conflicts: validate.Conflicts(sess.Engine.Board()),
	}, nil
}

// ListDifficulties returns the available difficulty profiles
func (s *gameServiceImpl) ListDifficulties(ctx context.Context) ([]*DifficultyInfo, error) {
	return s.difficulties.List(), nil
}

// gameInfo builds the external view of a session. Correctness is only
// reported for complete boards.
func (s *gameServiceImpl) gameInfo(sess *Session) *GameInfo {
	board := sess.Engine.Board()
	complete := sess.Engine.IsComplete()

	return &GameInfo{
		GameID:         sess.ID,
		Board:          board,
		Difficulty:     sess.Difficulty,
		IsComplete:     complete,
		IsCorrect:      complete && sess.Engine.IsCorrect(),
		EmptyCells:     board.EmptyCells(),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
	}
}
