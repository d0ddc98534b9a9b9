package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Chakipaki/connect-four-oo/api"
	"github.com/Chakipaki/connect-four-oo/game/config"
	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/Chakipaki/connect-four-oo/game/service"
	"github.com/Chakipaki/connect-four-oo/game/session"
	"github.com/mark3labs/mcp-go/mcp"
)

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if result == nil {
		t.Fatal("Expected result, got nil")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content in result")
	}
	return text.Text
}

// newGameAPI starts the real REST API on an empty preset directory
func newGameAPI(t *testing.T) *httptest.Server {
	t.Helper()
	configs, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	gameService := service.NewGameService(session.NewManager(), configs)
	server := httptest.NewServer(api.NewServer(gameService, nil))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient(t *testing.T) {
	baseURL := "http://localhost:8080/"
	client := NewClient(baseURL)

	if client == nil {
		t.Fatal("Expected client to be created")
	}
	if client.baseURL != "http://localhost:8080" {
		t.Errorf("Expected trailing slash trimmed, got %s", client.baseURL)
	}
	if client.httpClient == nil {
		t.Error("Expected HTTP client to be initialized")
	}
	if client.GetMCPServer() == nil {
		t.Error("Expected MCP server to be initialized")
	}
}

func TestClient_apiCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"id": "ab12", "count": 3})
	}))
	defer server.Close()

	client := NewClient(server.URL)

	var response map[string]interface{}
	if err := client.apiCall(context.Background(), "GET", "/api", nil, &response); err != nil {
		t.Fatalf("apiCall failed: %v", err)
	}
	if response["id"] != "ab12" {
		t.Errorf("Expected id ab12, got %v", response["id"])
	}
}

func TestClient_apiCall_Error(t *testing.T) {
	client := NewClient("http://invalid-url-that-does-not-exist:9999")

	if err := client.apiCall(context.Background(), "GET", "/api", nil, nil); err == nil {
		t.Error("Expected error for invalid URL")
	}
}

func TestClient_apiCall_HTTPError(t *testing.T) {
	t.Run("plain body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("Internal Server Error"))
		}))
		defer server.Close()

		err := NewClient(server.URL).apiCall(context.Background(), "GET", "/api", nil, nil)
		if err == nil || !strings.Contains(err.Error(), "API error") {
			t.Errorf("Expected 'API error' in error message, got: %v", err)
		}
	})

	t.Run("coded error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "column is full", "code": "column_full"})
		}))
		defer server.Close()

		err := NewClient(server.URL).apiCall(context.Background(), "POST", "/api", map[string]int{"column": 1}, nil)
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("Expected *APIError, got %T", err)
		}
		if apiErr.Status != http.StatusConflict || apiErr.Code != "column_full" {
			t.Errorf("Unexpected API error: %+v", apiErr)
		}
		if err.Error() != "column is full (column_full)" {
			t.Errorf("Unexpected message %q", err.Error())
		}
	})
}

func TestIntArg(t *testing.T) {
	args := map[string]interface{}{
		"float":   float64(3),
		"int":     4,
		"frac":    2.5,
		"text":    "five",
		"number":  json.Number("6"),
		"missing": nil,
	}

	tests := []struct {
		key     string
		want    int
		present bool
		wantErr bool
	}{
		{"float", 3, true, false},
		{"int", 4, true, false},
		{"number", 6, true, false},
		{"frac", 0, true, true},
		{"text", 0, true, true},
		{"missing", 0, false, false},
		{"absent", 0, false, false},
	}

	for _, tt := range tests {
		got, present, err := intArg(args, tt.key)
		if got != tt.want || present != tt.present || (err != nil) != tt.wantErr {
			t.Errorf("intArg(%s) = %d, %v, %v", tt.key, got, present, err)
		}
	}
}

func TestFormatGameState(t *testing.T) {
	eng, _ := engine.NewEngine(4, 3)
	eng.DropPiece(1)
	result := formatGameState(eng.Snapshot())

	expected := []string{
		"Board: 4x3",
		"Status: in_progress",
		"Turn: Player 2 (O)",
		"0 1 2 3\n. . . .\n. . . .\n. X . .\n",
		"Player 2 to move",
	}
	for _, field := range expected {
		if !strings.Contains(result, field) {
			t.Errorf("Expected %q in formatted output, got: %s", field, result)
		}
	}
}

func TestFormatGameState_Won(t *testing.T) {
	eng, _ := engine.NewEngine(4, 4)
	for _, column := range []int{0, 1, 0, 1, 0, 1, 0} {
		eng.DropPiece(column)
	}

	result := formatGameState(eng.Snapshot())
	if !strings.Contains(result, "Status: won") || !strings.Contains(result, "Player 1 won!") {
		t.Errorf("Expected win in result, got: %s", result)
	}
	if strings.Contains(result, "Turn:") {
		t.Errorf("Finished game should not show a turn: %s", result)
	}
}

func TestFormatGameState_Nil(t *testing.T) {
	if formatGameState(nil) != "No game state" {
		t.Error("Expected placeholder for nil state")
	}
}

func TestClient_handleGameInstructions(t *testing.T) {
	client := NewClient("http://localhost:8080")

	result, err := client.handleGameInstructions(context.Background(), toolRequest("game_instructions", nil))
	if err != nil {
		t.Fatalf("handleGameInstructions failed: %v", err)
	}

	text := resultText(t, result)
	for _, content := range []string{"CONNECT FOUR", "RULES:", "READING THE BOARD:", "column_full", "game_already_over"} {
		if !strings.Contains(text, content) {
			t.Errorf("Expected '%s' in instructions, got: %s", content, text)
		}
	}
}

func TestClient_MissingArguments(t *testing.T) {
	client := NewClient("http://localhost:8080")
	ctx := context.Background()

	result, _ := client.handleGameState(ctx, toolRequest("game_state", nil))
	if !result.IsError {
		t.Error("Expected error without session_id")
	}

	result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{"session_id": "ab12"}))
	if !result.IsError || !strings.Contains(resultText(t, result), "column is required") {
		t.Error("Expected error without column")
	}

	result, _ = client.handleGetCell(ctx, toolRequest("get_cell", map[string]interface{}{"session_id": "ab12", "row": 1.0}))
	if !result.IsError {
		t.Error("Expected error without column")
	}
}

func TestClient_PlayThroughTools(t *testing.T) {
	server := newGameAPI(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	result, err := client.handleCreateGame(ctx, toolRequest("create_game", map[string]interface{}{
		"width":  4.0,
		"height": 4.0,
	}))
	if err != nil {
		t.Fatalf("create_game failed: %v", err)
	}
	text := resultText(t, result)
	if result.IsError || !strings.Contains(text, "Board: 4x4") {
		t.Fatalf("Unexpected create_game result: %s", text)
	}

	var sessionID string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Created game: ") {
			sessionID = strings.TrimPrefix(line, "Created game: ")
		}
	}
	if sessionID == "" {
		t.Fatalf("No session ID in %s", text)
	}

	for _, column := range []float64{0, 1, 0, 1, 0, 1} {
		result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{
			"session_id": sessionID,
			"column":     column,
			"intent":     "stack column 0",
		}))
		if result.IsError {
			t.Fatalf("drop_piece %v failed: %s", column, resultText(t, result))
		}
	}

	result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{
		"session_id": sessionID,
		"column":     0.0,
	}))
	if !strings.Contains(resultText(t, result), "Player 1 won!") {
		t.Errorf("Expected win, got %s", resultText(t, result))
	}

	result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{
		"session_id": sessionID,
		"column":     2.0,
	}))
	if !result.IsError || !strings.Contains(resultText(t, result), "game_already_over") {
		t.Errorf("Expected game_already_over error, got %s", resultText(t, result))
	}

	result, _ = client.handleGetCell(ctx, toolRequest("get_cell", map[string]interface{}{
		"session_id": sessionID,
		"row":        3.0,
		"column":     1.0,
	}))
	if !strings.Contains(resultText(t, result), "Player 2 [O]") {
		t.Errorf("Expected Player 2 at (3,1), got %s", resultText(t, result))
	}

	result, _ = client.handleReset(ctx, toolRequest("reset_game", map[string]interface{}{
		"session_id": sessionID,
		"width":      5.0,
	}))
	if result.IsError || !strings.Contains(resultText(t, result), "Board: 5x4") {
		t.Errorf("Expected 5x4 board after reset, got %s", resultText(t, result))
	}

	result, _ = client.handleListGames(ctx, toolRequest("list_games", nil))
	if !strings.Contains(resultText(t, result), sessionID) {
		t.Errorf("Expected %s in game list, got %s", sessionID, resultText(t, result))
	}

	result, _ = client.handleListConfigs(ctx, toolRequest("list_configs", nil))
	if result.IsError || !strings.Contains(resultText(t, result), "Available presets") {
		t.Errorf("Unexpected list_configs result: %s", resultText(t, result))
	}
}

func TestClient_ListGamesEmpty(t *testing.T) {
	server := newGameAPI(t)
	client := NewClient(server.URL)

	result, _ := client.handleListGames(context.Background(), toolRequest("list_games", nil))
	if !strings.Contains(resultText(t, result), "No active games") {
		t.Errorf("Expected empty list message, got %s", resultText(t, result))
	}
}

func TestClient_DropPieceLogsIntent(t *testing.T) {
	server := newGameAPI(t)
	client := NewClient(server.URL)
	ctx := context.Background()

	result, _ := client.handleCreateGame(ctx, toolRequest("create_game", map[string]interface{}{}))
	var sessionID string
	for _, line := range strings.Split(resultText(t, result), "\n") {
		if strings.HasPrefix(line, "Created game: ") {
			sessionID = strings.TrimPrefix(line, "Created game: ")
		}
	}
	if sessionID == "" {
		t.Fatalf("No session ID in %s", resultText(t, result))
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{
		"session_id": sessionID,
		"column":     3.0,
		"intent":     "take the center",
	}))
	if result.IsError {
		t.Fatalf("drop_piece failed: %s", resultText(t, result))
	}
	if !strings.Contains(buf.String(), `column=3 intent="take the center"`) {
		t.Errorf("Expected intent in log, got %q", buf.String())
	}

	buf.Reset()
	result, _ = client.handleDropPiece(ctx, toolRequest("drop_piece", map[string]interface{}{
		"session_id": sessionID,
		"column":     3.0,
	}))
	if result.IsError {
		t.Fatalf("drop_piece failed: %s", resultText(t, result))
	}
	if strings.Contains(buf.String(), "intent=") {
		t.Errorf("Expected no intent log without intent, got %q", buf.String())
	}
}
