package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cityjumper/mysudoku/game/service"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}

	if hub.games == nil {
		t.Error("Hub games map is nil")
	}

	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}

	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}

	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:    hub,
		gameID: "test-game",
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client)

	if _, exists := hub.games["test-game"]; !exists {
		t.Error("Game subscriber set was not created")
	}

	if !hub.games["test-game"][client] {
		t.Error("Client was not registered for the game")
	}

	if len(hub.games["test-game"]) != 1 {
		t.Errorf("Expected 1 client for game, got %d", len(hub.games["test-game"]))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := NewHub()

	client := &Client{
		hub:    hub,
		gameID: "test-game",
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.games["test-game"]; exists {
		t.Error("Game should have been cleaned up after the last client left")
	}
}

func TestHubMultipleClientsPerGame(t *testing.T) {
	hub := NewHub()
	gameID := "multi-client-game"

	client1 := &Client{
		hub:    hub,
		gameID: gameID,
		send:   make(chan []byte, 256),
	}
	client2 := &Client{
		hub:    hub,
		gameID: gameID,
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client1)
	hub.registerClient(client2)

	if len(hub.games[gameID]) != 2 {
		t.Errorf("Expected 2 clients for game, got %d", len(hub.games[gameID]))
	}

	hub.unregisterClient(client1)

	if len(hub.games[gameID]) != 1 {
		t.Errorf("Expected 1 client remaining, got %d", len(hub.games[gameID]))
	}

	if !hub.games[gameID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastToGame(t *testing.T) {
	hub := NewHub()
	gameID := "broadcast-test"

	client := &Client{
		hub:    hub,
		gameID: gameID,
		send:   make(chan []byte, 256),
	}

	hub.registerClient(client)

	game := &service.GameInfo{
		GameID:     gameID,
		Difficulty: "medium",
		EmptyCells: 39,
	}
	game.Board[0][0] = 5

	hub.BroadcastToGame(gameID, game)

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}

		if message.GameID != gameID {
			t.Errorf("Expected gameID %s, got %s", gameID, message.GameID)
		}

		if message.Event != "board_update" {
			t.Errorf("Expected event 'board_update', got %s", message.Event)
		}

		if message.Game == nil || message.Game.Board[0][0] != 5 {
			t.Error("Board not correctly transmitted")
		}

		if message.Game.EmptyCells != 39 {
			t.Errorf("Expected 39 empty cells, got %d", message.Game.EmptyCells)
		}

	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := NewHub()
	done := make(chan bool)

	go func() {
		select {
		case message := <-hub.broadcast:
			if message.GameID != "event-test" {
				t.Errorf("Expected gameID 'event-test', got %s", message.GameID)
			}
			if message.Event != "game_deleted" {
				t.Errorf("Expected event 'game_deleted', got %s", message.Event)
			}
			if message.Data != "test-data" {
				t.Errorf("Expected data 'test-data', got %v", message.Data)
			}
			done <- true
		case <-time.After(100 * time.Millisecond):
			t.Error("No broadcast message received within timeout")
			done <- false
		}
	}()

	hub.BroadcastEvent("event-test", "game_deleted", "test-data")

	<-done
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := NewHub()

	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			gameID = "default"
		}
		hub.ServeWS(w, r, gameID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?game=ws-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	if len(hub.games["ws-test"]) != 1 {
		t.Errorf("Expected 1 client for game, got %d", len(hub.games["ws-test"]))
	}

	conn.Close()

	// Give some time for unregistration
	time.Sleep(10 * time.Millisecond)

	if _, exists := hub.games["ws-test"]; exists {
		t.Error("Game should have been cleaned up after WebSocket close")
	}
}

func TestWebSocketMessageReceive(t *testing.T) {
	hub := NewHub()

	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gameID := r.URL.Query().Get("game")
		if gameID == "" {
			gameID = "default"
		}
		hub.ServeWS(w, r, gameID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?game=msg-test"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give time for connection to establish
	time.Sleep(10 * time.Millisecond)

	game := &service.GameInfo{
		GameID:     "msg-test",
		Difficulty: "hard",
		EmptyCells: 51,
	}
	game.Board[4][4] = 9

	hub.BroadcastToGame("msg-test", game)

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	if err := json.Unmarshal(messageData, &message); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if message.GameID != "msg-test" {
		t.Errorf("Expected gameID 'msg-test', got %s", message.GameID)
	}

	if message.Game == nil || message.Game.Board[4][4] != 9 {
		t.Error("Board not correctly received")
	}

	if message.Game.Difficulty != "hard" || message.Game.EmptyCells != 51 {
		t.Error("Game metadata not correctly received")
	}
}
