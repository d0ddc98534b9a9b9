package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/Chakipaki/connect-four-oo/game/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// APIError is a non-2xx answer from the REST API
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: %d", e.Status)
	}
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
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
		"Connect Four",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Connect Four - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Two players take turns dropping pieces into columns. A piece falls to the lowest
empty row. The first player to line up four pieces horizontally, vertically or
diagonally wins. A full board without a line is a tie.

AVAILABLE TOOLS:
- create_game: Start a new game (preset or custom width/height)
- list_games: List all active games
- game_state: Show the board and whose turn it is
- drop_piece: Drop the current player's piece into a column
- get_cell: Read a single cell (row 0 is the top)
- reset_game: Start over, optionally with a new board size
- list_configs: List board presets
- game_instructions: Rules and tips

Both players are driven through the same tools; the server tracks whose turn it is.`),
	)

	c.registerTools()
}

func sessionIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Game session ID",
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new Connect Four game. Pick a preset or give an explicit board size.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Preset ID from list_configs (optional)",
				},
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "Number of columns (optional)",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "Number of rows (optional)",
				},
			},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_games",
		Description: "List all active games",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListGames)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Show the board, status and whose turn it is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "drop_piece",
		Description: "Drop the current player's piece into a column (0 is the leftmost)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"column": map[string]interface{}{
					"type":        "integer",
					"description": "Column index, 0 based",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Optional note on why this column was picked; logged with the move",
				},
			},
			Required: []string{"session_id", "column"},
		},
	}, c.handleDropPiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_cell",
		Description: "Read one cell of the board. Row 0 is the top row.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"row": map[string]interface{}{
					"type":        "integer",
					"description": "Row index, 0 is the top",
				},
				"column": map[string]interface{}{
					"type":        "integer",
					"description": "Column index, 0 is the left",
				},
			},
			Required: []string{"session_id", "row", "column"},
		},
	}, c.handleGetCell)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Clear the board and give the first move to Player 1. Width and height are optional.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty(),
				"width": map[string]interface{}{
					"type":        "integer",
					"description": "New number of columns (optional)",
				},
				"height": map[string]interface{}{
					"type":        "integer",
					"description": "New number of rows (optional)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules of Connect Four and how to read the board",
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

// apiCall makes an HTTP request to the REST API
func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
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
		return &APIError{Status: resp.StatusCode, Code: errResp["code"], Message: errResp["error"]}
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// arguments returns the tool call arguments, empty when none were sent
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}

// intArg reads an integer argument. JSON numbers arrive as float64.
func intArg(args map[string]interface{}, key string) (int, bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, true, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, true, fmt.Errorf("%s must be an integer, got %v", key, v)
		}
		return int(n), true, nil
	}
	return 0, true, fmt.Errorf("%s must be an integer, got %v", key, raw)
}

func requireSessionID(args map[string]interface{}) (string, *mcp.CallToolResult) {
	sessionID, _ := args["session_id"].(string)
	if sessionID == "" {
		return "", mcp.NewToolResultError("session_id is required")
	}
	return sessionID, nil
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)

	var body service.CreateSessionRequest
	body.ConfigID, _ = args["config_id"].(string)

	var err error
	if body.Width, _, err = intArg(args, "width"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if body.Height, _, err = intArg(args, "height"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created game: %s\nConfig: %s\n\n%s", session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListGames(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var resp struct {
		Count    int                    `json:"count"`
		Sessions []*service.SessionInfo `json:"sessions"`
	}
	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if resp.Count == 0 {
		return mcp.NewToolResultText("No active games. Use create_game to start one."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active games: %d\n", resp.Count)
	for _, s := range resp.Sessions {
		b.WriteString(formatSessionInfo(s))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, errResult := requireSessionID(arguments(request))
	if errResult != nil {
		return errResult, nil
	}

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleDropPiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireSessionID(args)
	if errResult != nil {
		return errResult, nil
	}

	column, ok, err := intArg(args, "column")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("column is required"), nil
	}
	if intent, _ := args["intent"].(string); intent != "" {
		log.Printf("[MCP] drop_piece session=%s column=%d intent=%q", sessionID, column, intent)
	}

	var outcome service.DropOutcome
	path := fmt.Sprintf("/api/sessions/%s/drop", sessionID)
	if err := c.apiCall(ctx, "POST", path, map[string]int{"column": column}, &outcome); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDropOutcome(&outcome)), nil
}

func (c *Client) handleGetCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireSessionID(args)
	if errResult != nil {
		return errResult, nil
	}

	row, rowOK, err := intArg(args, "row")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	column, colOK, err := intArg(args, "column")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !rowOK || !colOK {
		return mcp.NewToolResultError("row and column are required"), nil
	}

	var resp struct {
		Cell engine.Cell `json:"cell"`
	}
	path := fmt.Sprintf("/api/sessions/%s/cells/%d/%d", sessionID, row, column)
	if err := c.apiCall(ctx, "GET", path, nil, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Cell (%d,%d): %s [%s]", row, column, resp.Cell, engine.Symbol(resp.Cell))), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, errResult := requireSessionID(args)
	if errResult != nil {
		return errResult, nil
	}

	body := map[string]int{}
	for _, key := range []string{"width", "height"} {
		v, ok, err := intArg(args, key)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if ok {
			body[key] = v
		}
	}

	var resp struct {
		Message string            `json:"message"`
		State   *engine.GameState `json:"state"`
	}
	if err := c.apiCall(ctx, "POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), body, &resp); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(resp.Message + "\n\n" + formatGameState(resp.State)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []*service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available presets:\n")
	for _, cfg := range configs {
		fmt.Fprintf(&b, "- %s: %s (%dx%d)", cfg.ConfigID, cfg.Name, cfg.Width, cfg.Height)
		if cfg.Description != "" {
			fmt.Fprintf(&b, " - %s", cfg.Description)
		}
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `CONNECT FOUR

RULES:
- The board has W columns and H rows. Row 0 is the top, column 0 is the left.
- Player 1 (X) always moves first, then turns alternate.
- drop_piece puts the current player's piece in the lowest empty row of a column.
- Four of your pieces in a line horizontally, vertically or diagonally wins.
- When the top row is full and nobody has four in a line, the game is a tie.
- After a win or tie every drop is rejected until reset_game.

READING THE BOARD:
  0 1 2 3 4 5 6      <- column indexes (mod 10 on wide boards)
  . . . . . . .
  . . . X . . .      X = Player 1, O = Player 2, . = empty
  . . O X O . .

ERRORS:
- invalid_column: the column index is outside the board
- column_full: that column has no empty row left, choose another
- game_already_over: reset the game to keep playing
- invalid_dimension: width and height must be positive

TIPS:
- The centre columns take part in the most lines.
- Before every move, check whether your opponent threatens three in a line.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	if session.GameState == nil {
		return fmt.Sprintf("- %s (config: %s)\n", session.ID, session.ConfigName)
	}
	return fmt.Sprintf("- %s (config: %s, %dx%d): %s\n",
		session.ID, session.ConfigName, session.GameState.Width, session.GameState.Height, session.GameState.Message)
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Board: %dx%d\n", state.Width, state.Height)
	fmt.Fprintf(&b, "Status: %s\n", state.Status)
	if state.Status == engine.StatusInProgress {
		fmt.Fprintf(&b, "Turn: %s (%s)\n", state.CurrentPlayer, engine.Symbol(state.CurrentPlayer))
	}
	b.WriteString("\n")
	b.WriteString(engine.FormatBoard(state))
	b.WriteString("\n")
	b.WriteString(state.Message)
	return b.String()
}

func formatDropOutcome(outcome *service.DropOutcome) string {
	var b strings.Builder
	if outcome.Result != nil {
		fmt.Fprintf(&b, "%s dropped into column %d and landed on row %d.\n",
			outcome.Result.Player, outcome.Result.Column, outcome.Result.Row)
	}
	b.WriteString(formatGameState(outcome.GameState))
	return b.String()
}
