package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cityjumper/mysudoku/game/service"
	"github.com/cityjumper/mysudoku/transport/websocket"
)

// Server represents the REST API server
type Server struct {
	service service.GameService
	hub     *websocket.Hub
	router  *mux.Router
}

// NewServer creates a new API server
func NewServer(gameService service.GameService, hub *websocket.Hub) *Server {
	s := &Server{
		service: gameService,
		hub:     hub,
		router:  mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// API index and health
	api.HandleFunc("", s.handleAPIIndex).Methods("GET")
	api.HandleFunc("/", s.handleAPIIndex).Methods("GET")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// Game lifecycle
	api.HandleFunc("/games", s.handleCreateGame).Methods("POST")
	api.HandleFunc("/games", s.handleListGames).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleGetGame).Methods("GET")
	api.HandleFunc("/games/{id}", s.handleDeleteGame).Methods("DELETE")

	// Play
	api.HandleFunc("/games/{id}/move", s.handleMove).Methods("POST")
	api.HandleFunc("/games/{id}/solution", s.handleGetSolution).Methods("GET")
	api.HandleFunc("/games/{id}/validate", s.handleValidate).Methods("GET")

	// Difficulty profiles
	api.HandleFunc("/difficulties", s.handleListDifficulties).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// Index and health

func (s *Server) handleAPIIndex(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Sudoku Game API",
		"endpoints": map[string]string{
			"POST /api/games":                "Create a new game",
			"GET /api/games":                 "List active games",
			"GET /api/games/{id}":            "Get game state",
			"POST /api/games/{id}/move":      "Place or clear a number",
			"GET /api/games/{id}/solution":   "Get the solution",
			"GET /api/games/{id}/validate":   "Validate the current board",
			"DELETE /api/games/{id}":         "Delete a game",
			"GET /api/difficulties":          "List difficulty profiles",
			"GET /ws?game={id}":              "WebSocket board updates",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Game lifecycle handlers

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Difficulty string `json:"difficulty,omitempty"`
	}

	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	game, err := s.service.CreateGame(r.Context(), req.Difficulty)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, game)
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.service.ListGames(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, games)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	game, err := s.service.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, game)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	err := s.service.DeleteGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Game %s deleted successfully", gameID),
	})
}

// Play handlers

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	var req struct {
		Row int `json:"row"`
		Col int `json:"col"`
		Num int `json:"num"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.service.PlaceNumber(r.Context(), gameID, req.Row, req.Col, req.Num)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	// Broadcast to WebSocket clients after a successful mutation
	if s.hub != nil && result.Success {
		if game, err := s.service.GetGame(r.Context(), gameID); err == nil {
			s.hub.BroadcastToGame(gameID, game)
		}
	}

	// Compact server log for observability
	status := "FAIL"
	if result.Success {
		status = "OK"
	}
	log.Printf("[MOVE] game=%s (%d,%d)=%d complete=%t correct=%t status=%s",
		gameID, req.Row, req.Col, req.Num, result.IsComplete, result.IsCorrect, status)

	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetSolution(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	solution, err := s.service.GetSolution(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, solution)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := vars["id"]

	result, err := s.service.Validate(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Difficulty handlers

func (s *Server) handleListDifficulties(w http.ResponseWriter, r *http.Request) {
	difficulties, err := s.service.ListDifficulties(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"difficulties": difficulties,
	})
}

// WebSocket handler

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		http.Error(w, "game parameter required", http.StatusBadRequest)
		return
	}

	// Verify game exists
	_, err := s.service.GetGame(context.Background(), gameID)
	if err != nil {
		http.Error(w, "Invalid game", http.StatusNotFound)
		return
	}

	s.hub.ServeWS(w, r, gameID)
}
