// Package mcp exposes the Sudoku game server as a set of MCP tools. The
// client is a thin proxy: every tool call is translated into a REST API
// request, so MCP and HTTP consumers always observe identical behavior.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/cityjumper/mysudoku/game/engine"
	"github.com/cityjumper/mysudoku/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Sudoku Game Server",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Sudoku Game Server - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Fill the 9x9 board so that every row, column, and 3x3 box contains the digits 1-9 exactly once.

AVAILABLE TOOLS:
- create_game: Start a new puzzle (easy/medium/hard)
- game_state: Get the current board and completion status
- place_number: Place a digit 1-9, or 0 to clear a cell
- get_solution: Reveal the stored solution
- validate_board: Check a completed board against the solution
- list_games: List all active games
- delete_game: Delete a game
- list_difficulties: List available difficulty profiles
- game_instructions: Get the full rules

Cells are addressed by zero-based row and column (0-8). Placing a digit that
repeats in its row, column, or box is rejected and leaves the board unchanged.`),
	)

	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new Sudoku game at the given difficulty",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"difficulty": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"easy", "medium", "hard"},
					"description": "Difficulty level (optional, default medium)",
				},
			},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board and completion status of a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_number",
		Description: "Place a digit on the board (0 clears the cell)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
				"row": map[string]interface{}{
					"type":        "number",
					"description": "Row index (0-8)",
				},
				"col": map[string]interface{}{
					"type":        "number",
					"description": "Column index (0-8)",
				},
				"num": map[string]interface{}{
					"type":        "number",
					"description": "Digit to place (1-9), or 0 to clear",
				},
			},
			Required: []string{"game_id", "row", "col", "num"},
		},
	}, c.handlePlaceNumber)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_solution",
		Description: "Reveal the stored solution for a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleGetSolution)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_board",
		Description: "Check whether the current board is the correct solution",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleValidateBoard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "delete_game",
		Description: "Delete a game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"game_id": map[string]interface{}{
					"type":        "string",
					"description": "Game ID to delete",
				},
			},
			Required: []string{"game_id"},
		},
	}, c.handleDeleteGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_difficulties",
		Description: "List available difficulty profiles",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListDifficulties)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the full Sudoku rules and tool usage notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// renderGrid draws a grid with box separators for text responses
func renderGrid(g engine.Grid) string {
	var b strings.Builder
	for r := 0; r < engine.GridSize; r++ {
		if r > 0 && r%engine.BoxSize == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < engine.GridSize; c++ {
			if c > 0 && c%engine.BoxSize == 0 {
				b.WriteString("| ")
			}
			if g[r][c] == engine.EmptyCell {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	difficulty, _ := args["difficulty"].(string)

	body := map[string]string{}
	if difficulty != "" {
		body["difficulty"] = difficulty
	}

	var game service.GameInfo
	err := c.apiCall("POST", "/api/games", body, &game)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\nDifficulty: %s\nEmpty cells: %d\n\n%s",
		game.GameID, game.Difficulty, game.EmptyCells, renderGrid(game.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var game service.GameInfo
	err := c.apiCall("GET", "/api/games/"+gameID, nil, &game)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Game: %s\nDifficulty: %s\nComplete: %t\nCorrect: %t\nEmpty cells: %d\n\n%s",
		game.GameID, game.Difficulty, game.IsComplete, game.IsCorrect, game.EmptyCells, renderGrid(game.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlaceNumber(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)
	row, _ := args["row"].(float64)
	col, _ := args["col"].(float64)
	num, _ := args["num"].(float64)

	body := map[string]int{
		"row": int(row),
		"col": int(col),
		"num": int(num),
	}

	var move service.MoveResult
	err := c.apiCall("POST", "/api/games/"+gameID+"/move", body, &move)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Success: %t\n%s\n\n%s", move.Success, move.Message, renderGrid(move.Board))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSolution(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var solution service.SolutionInfo
	err := c.apiCall("GET", "/api/games/"+gameID+"/solution", nil, &solution)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Solution for game %s:\n\n%s", solution.GameID, renderGrid(solution.Solution))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleValidateBoard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var validation service.ValidationResult
	err := c.apiCall("GET", "/api/games/"+gameID+"/validate", nil, &validation)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Valid: %t\nComplete: %t\n%s", validation.Valid, validation.Complete, validation.Message)
	if len(validation.Conflicts) > 0 {
		result += fmt.Sprintf("\nConflicting cells: %v", validation.Conflicts)
	}
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var games service.GameList
	err := c.apiCall("GET", "/api/games", nil, &games)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if games.Count == 0 {
		return mcp.NewToolResultText("No active games"), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active games: %d\n", games.Count)
	for _, id := range games.GameIDs {
		fmt.Fprintf(&b, "- %s\n", id)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleDeleteGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	gameID, _ := args["game_id"].(string)

	var resp map[string]string
	err := c.apiCall("DELETE", "/api/games/"+gameID, nil, &resp)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resp["message"]), nil
}

func (c *Client) handleListDifficulties(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp struct {
		Difficulties []*service.DifficultyInfo `json:"difficulties"`
	}
	err := c.apiCall("GET", "/api/difficulties", nil, &resp)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	for _, d := range resp.Difficulties {
		marker := ""
		if d.Default {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "%s%s: removes %d-%d cells. %s\n", d.ID, marker, d.MinRemoved, d.MaxRemoved, d.Description)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `SUDOKU - RULES AND TOOL USAGE

OBJECTIVE:
Fill every empty cell so that each row, each column, and each 3x3 box
contains the digits 1 through 9 exactly once.

BOARD:
- 9x9 grid, addressed by zero-based row and column (0-8)
- 0 marks an empty cell
- The puzzle is generated with a unique full solution stored server-side;
  validation compares your board against that stored solution

MOVES:
- place_number with num 1-9 places a digit; the server rejects digits
  that already appear in the same row, column, or box
- place_number with num 0 clears a cell; clearing always succeeds
- Any cell may be overwritten or cleared, including the original givens
- A rejected move leaves the board exactly as it was

WINNING:
- When no empty cells remain, validate_board reports whether your board
  matches the stored solution
- A complete board that satisfies the row/column/box rules but differs
  from the stored solution is still reported as incorrect

DIFFICULTY:
- easy removes 30-35 cells, medium 40-45, hard 50-55`

	return mcp.NewToolResultText(instructions), nil
}
