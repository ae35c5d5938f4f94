// Package service provides the business logic layer for the Sudoku game server.
//
// The service package implements:
//   - Multi-game session management
//   - Difficulty profile resolution
//   - Move processing and result shaping
//   - Solution retrieval and board validation
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. SessionRegistry handles session creation, retrieval, and
// lifecycle. DifficultyManager resolves difficulty names to removal
// profiles.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP)
// and the board engine, providing session isolation and business logic
// orchestration. Each session owns its own engine instance with an
// independent board and solution. A service-level lock serializes
// mutating operations, satisfying the engine's single-owner contract.
//
// Usage:
//
//	registry := session.NewManager()
//	profiles := config.NewManager("")
//	games := service.NewGameService(registry, profiles)
//
//	info, err := games.CreateGame(ctx, "medium")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := games.PlaceNumber(ctx, info.GameID, 0, 0, 5)
//
// Error Model:
//
// Lookups against unknown game identifiers wrap
// session.ErrSessionNotFound. A placement that violates the rules is not
// an error; it returns a MoveResult with Success false and the board
// unchanged.
package service
