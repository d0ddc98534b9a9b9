package engine

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCountWindows(t *testing.T) {
	tests := []struct {
		width, height int
		expected      map[string]int
	}{
		{7, 6, map[string]int{"horizontal": 24, "vertical": 21, "diagonal_down_right": 12, "diagonal_down_left": 12}},
		{4, 4, map[string]int{"horizontal": 4, "vertical": 4, "diagonal_down_right": 1, "diagonal_down_left": 1}},
		{3, 3, map[string]int{"horizontal": 0, "vertical": 0, "diagonal_down_right": 0, "diagonal_down_left": 0}},
	}

	for _, test := range tests {
		got := CountWindows(test.width, test.height)
		for name, want := range test.expected {
			if got[name] != want {
				t.Errorf("%dx%d %s: expected %d, got %d", test.width, test.height, name, want, got[name])
			}
		}
	}
}

func TestPlayerOpponent(t *testing.T) {
	if Player1.Opponent() != Player2 {
		t.Errorf("Expected Player2, got %v", Player1.Opponent())
	}
	if Player2.Opponent() != Player1 {
		t.Errorf("Expected Player1, got %v", Player2.Opponent())
	}
	if Empty.Opponent() != Empty {
		t.Errorf("Expected Empty, got %v", Empty.Opponent())
	}
}

func TestErrorCodes(t *testing.T) {
	tests := []struct {
		err  Error
		code string
	}{
		{ErrInvalidDimension, "invalid_dimension"},
		{ErrInvalidColumn, "invalid_column"},
		{ErrColumnFull, "column_full"},
		{ErrGameAlreadyOver, "game_already_over"},
		{ErrInvalidCell, "invalid_cell"},
		{Error("something else"), "unknown"},
	}

	for _, test := range tests {
		if test.err.Code() != test.code {
			t.Errorf("%q: expected code %s, got %s", test.err, test.code, test.err.Code())
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusInProgress.IsTerminal() {
		t.Error("in_progress should not be terminal")
	}
	if !StatusWon.IsTerminal() || !StatusTied.IsTerminal() {
		t.Error("won and tied should be terminal")
	}
}

func TestFormatBoard(t *testing.T) {
	e, _ := NewEngine(4, 2)
	e.DropPiece(0)
	e.DropPiece(3)
	e.DropPiece(0)

	expected := "0 1 2 3\n" +
		"X . . .\n" +
		"X . . O\n"
	if got := FormatBoard(e.Snapshot()); got != expected {
		t.Errorf("Unexpected board:\n%s\nwant:\n%s", got, expected)
	}

	if FormatBoard(nil) != "" {
		t.Error("Expected empty output for nil state")
	}
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *GameConfig
		wantErr bool
	}{
		{"default", DefaultConfig(), false},
		{"nil", nil, true},
		{"missing name", &GameConfig{Width: 7, Height: 6}, true},
		{"zero width", &GameConfig{Name: "x", Width: 0, Height: 6}, true},
		{"negative height", &GameConfig{Name: "x", Width: 7, Height: -1}, true},
		{"too wide", &GameConfig{Name: "x", Width: MaxBoardLength + 1, Height: 6}, true},
		{"single cell", &GameConfig{Name: "x", Width: 1, Height: 1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateGameConfig(test.config)
			if test.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !test.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}

	err := ValidateGameConfig(&GameConfig{Name: "x", Width: 0, Height: 1})
	if !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Expected ErrInvalidDimension in chain, got %v", err)
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mini.json")
	data, _ := json.Marshal(GameConfig{Name: "mini", Description: "Mini", Width: 4, Height: 4})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Width != 4 || config.Height != 4 {
		t.Errorf("Expected 4x4, got %dx%d", config.Width, config.Height)
	}

	e, err := NewEngineFromConfig(config)
	if err != nil {
		t.Fatalf("Failed to create engine from config: %v", err)
	}
	if e.Width() != 4 {
		t.Errorf("Expected width 4, got %d", e.Width())
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0644)
	if _, err := LoadGameConfig(bad); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Errorf("Expected parse error, got %v", err)
	}
}
