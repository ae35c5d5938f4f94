// Package websocket provides WebSocket transport for the Sudoku game server.
//
// The websocket package implements:
//   - Game-aware WebSocket connections
//   - Automatic board broadcasting after each move
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// pair of goroutines for reading and writing.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded board snapshots:
//
//	{"game_id": "...", "event": "board_update", "game": {...}}
//
// Clients do not send game actions over the socket; moves go through the
// REST API, and the resulting state is pushed to every watcher of the
// same game.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move
//	hub.BroadcastToGame(gameID, info)
//
// Connections specify their game via query parameter (?game=<game_id>)
// when establishing the connection.
package websocket
