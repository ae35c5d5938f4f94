// Command sudoku-bot is an autoplayer that exercises the REST API end to
// end: it creates a game, fetches the solution, replays it into the empty
// cells one move at a time, and asks the server to validate the result.
// Useful as a smoke test against a running server.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

type Grid [9][9]int

type GameInfo struct {
	GameID     string `json:"game_id"`
	Board      Grid   `json:"board"`
	Difficulty string `json:"difficulty"`
	IsComplete bool   `json:"is_complete"`
	IsCorrect  bool   `json:"is_correct"`
	EmptyCells int    `json:"empty_cells"`
	Message    string `json:"message,omitempty"`
}

type MoveResult struct {
	Success    bool   `json:"success"`
	Board      Grid   `json:"board"`
	IsComplete bool   `json:"is_complete"`
	IsCorrect  bool   `json:"is_correct"`
	Message    string `json:"message"`
}

type SolutionInfo struct {
	GameID   string `json:"game_id"`
	Solution Grid   `json:"solution"`
}

type ValidationResult struct {
	Valid    bool   `json:"valid"`
	Complete bool   `json:"complete"`
	Message  string `json:"message"`
}

type Client struct {
	baseURL string
	gameID  string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) CreateGame(difficulty string) (*GameInfo, error) {
	reqBody, err := json.Marshal(map[string]string{"difficulty": difficulty})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	resp, err := c.client.Post(c.baseURL+"/api/games", "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create game failed: %s - %s", resp.Status, string(body))
	}

	var game GameInfo
	if err := json.Unmarshal(body, &game); err != nil {
		return nil, fmt.Errorf("parse game response: %w", err)
	}

	c.gameID = game.GameID
	return &game, nil
}

func (c *Client) GetSolution() (*SolutionInfo, error) {
	url := fmt.Sprintf("%s/api/games/%s/solution", c.baseURL, c.gameID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("get solution: %w", err)
	}
	defer resp.Body.Close()

	var solution SolutionInfo
	if err := json.NewDecoder(resp.Body).Decode(&solution); err != nil {
		return nil, fmt.Errorf("parse solution: %w", err)
	}
	return &solution, nil
}

func (c *Client) PlaceNumber(row, col, num int) (*MoveResult, error) {
	reqBody, err := json.Marshal(map[string]int{"row": row, "col": col, "num": num})
	if err != nil {
		return nil, fmt.Errorf("marshal move: %w", err)
	}

	url := fmt.Sprintf("%s/api/games/%s/move", c.baseURL, c.gameID)
	resp, err := c.client.Post(url, "application/json", bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("move: %w", err)
	}
	defer resp.Body.Close()

	var result MoveResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parse move result: %w", err)
	}
	return &result, nil
}

func (c *Client) Validate() (*ValidationResult, error) {
	url := fmt.Sprintf("%s/api/games/%s/validate", c.baseURL, c.gameID)
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	defer resp.Body.Close()

	var result ValidationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("parse validation: %w", err)
	}
	return &result, nil
}

func (c *Client) DeleteGame() error {
	url := fmt.Sprintf("%s/api/games/%s", c.baseURL, c.gameID)
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	resp.Body.Close()
	return nil
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the Sudoku game server")
	difficulty := flag.String("difficulty", "medium", "Difficulty for the generated puzzle")
	keep := flag.Bool("keep", false, "Keep the game on the server after solving")
	flag.Parse()

	client := NewClient(*baseURL)

	game, err := client.CreateGame(*difficulty)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	log.Printf("Created %s game %s with %d empty cells", game.Difficulty, game.GameID, game.EmptyCells)

	solution, err := client.GetSolution()
	if err != nil {
		log.Fatalf("Failed to fetch solution: %v", err)
	}

	// Replay the solution into every empty cell
	moves, failures := 0, 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if game.Board[row][col] != 0 {
				continue
			}

			result, err := client.PlaceNumber(row, col, solution.Solution[row][col])
			if err != nil {
				log.Fatalf("Move failed at (%d,%d): %v", row, col, err)
			}

			moves++
			if !result.Success {
				failures++
				log.Printf("Rejected placement at (%d,%d): %s", row, col, result.Message)
			}
		}
	}

	validation, err := client.Validate()
	if err != nil {
		log.Fatalf("Failed to validate: %v", err)
	}

	log.Printf("Played %d moves (%d rejected)", moves, failures)
	log.Printf("Validation: valid=%t complete=%t - %s", validation.Valid, validation.Complete, validation.Message)

	if !*keep {
		if err := client.DeleteGame(); err != nil {
			log.Printf("Warning: failed to delete game: %v", err)
		}
	}

	if !validation.Valid {
		os.Exit(1)
	}
}
