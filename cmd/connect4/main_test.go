package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

func runApp(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Reader = strings.NewReader(input)
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{"connect4"}, args...))
	return out.String(), err
}

func TestPlayLines(t *testing.T) {
	eng, err := engine.NewEngine(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := playLines(eng, strings.NewReader("0\n\n1\n"), &out); err != nil {
		t.Fatalf("playLines failed: %v", err)
	}

	want := "0 1 2 3\n. . . .\n. . . .\n. . . .\n. . . .\nPlayer 1 to move\n" +
		"0 1 2 3\n. . . .\n. . . .\n. . . .\nX . . .\nPlayer 2 to move\n" +
		"0 1 2 3\n. . . .\n. . . .\n. . . .\nX O . .\nPlayer 1 to move\n"
	if out.String() != want {
		t.Errorf("Unexpected output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestPlayLines_Errors(t *testing.T) {
	eng, _ := engine.NewEngine(2, 1)

	var out bytes.Buffer
	if err := playLines(eng, strings.NewReader("x\n9\n0\n0\n1\n1\n"), &out); err != nil {
		t.Fatalf("playLines failed: %v", err)
	}

	for _, want := range []string{
		`error: "x" is not a column`,
		"error: column is outside the board (invalid_column)",
		"error: column is full (column_full)",
		"Tie!",
		"error: game is over, start a new game (game_already_over)",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestPlayLines_ResetAndQuit(t *testing.T) {
	eng, _ := engine.NewEngine(4, 4)

	var out bytes.Buffer
	if err := playLines(eng, strings.NewReader("0\nr\nq\n2\n"), &out); err != nil {
		t.Fatalf("playLines failed: %v", err)
	}

	if cell, _ := eng.GetCell(3, 0); cell != engine.Empty {
		t.Errorf("Expected reset board, got %v at bottom left", cell)
	}
	if cell, _ := eng.GetCell(3, 2); cell != engine.Empty {
		t.Error("Expected input after q to be ignored")
	}
}

func TestLineCommand(t *testing.T) {
	for _, key := range []string{"CONNECT4_WIDTH", "CONNECT4_HEIGHT", "CONNECT4_PRESET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	t.Run("explicit size", func(t *testing.T) {
		out, err := runApp(t, "0\n0\n0\n", "line", "--width", "3", "--height", "2")
		if err != nil {
			t.Fatalf("line failed: %v", err)
		}
		if !strings.HasPrefix(out, "0 1 2\n. . .\n. . .\n") {
			t.Errorf("Expected 3x2 board, got:\n%s", out)
		}
		if !strings.Contains(out, "column_full") {
			t.Errorf("Expected column full on third drop, got:\n%s", out)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := runApp(t, "", "line", "--width", "0")
		if err == nil {
			t.Error("Expected error for zero width")
		}
	})

	t.Run("preset", func(t *testing.T) {
		dir := t.TempDir()
		preset := `{"name": "wide", "description": "Wide board", "width": 9, "height": 3}`
		if err := os.WriteFile(filepath.Join(dir, "wide.json"), []byte(preset), 0644); err != nil {
			t.Fatal(err)
		}

		out, err := runApp(t, "", "line", "--dir", dir, "--preset", "wide")
		if err != nil {
			t.Fatalf("line failed: %v", err)
		}
		if !strings.HasPrefix(out, "0 1 2 3 4 5 6 7 8\n") {
			t.Errorf("Expected 9 columns, got:\n%s", out)
		}

		out, err = runApp(t, "", "line", "--dir", dir, "--preset", "wide", "--height", "5")
		if err != nil {
			t.Fatalf("line failed: %v", err)
		}
		if strings.Count(out, ". . . . . . . . .\n") != 5 {
			t.Errorf("Expected 5 rows, got:\n%s", out)
		}

		if _, err := runApp(t, "", "line", "--dir", dir, "--preset", "missing"); err == nil {
			t.Error("Expected error for missing preset")
		}
	})
}

func TestPresetsCommand(t *testing.T) {
	out, err := runApp(t, "", "presets", "--dir", filepath.Join("..", "..", "configs"))
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, want := range []string{"ID", "classic", "7x6", "large", "10x10", "mini", "4x4"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if _, err := runApp(t, "", "presets", "--dir", "/non/existent/path"); err == nil {
		t.Error("Expected error for missing directory")
	}
}
