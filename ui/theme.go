package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
)

var themeFile = "connect4/config.json"

// ErrInvalidTheme is returned for themes the terminal cannot draw.
var ErrInvalidTheme = errors.New("invalid theme")

// ThemeColors are 256-colour palette indexes.
type ThemeColors struct {
	Board     int `json:"board"`
	Player1   int `json:"player1"`
	Player2   int `json:"player2"`
	Empty     int `json:"empty"`
	Cursor    int `json:"cursor"`
	LastDrop  int `json:"last_drop_bg"`
	HintError int `json:"hint_error"`
}

type ThemeSymbols struct {
	Player1 rune `json:"player1"`
	Player2 rune `json:"player2"`
	Empty   rune `json:"empty"`
	Cursor  rune `json:"cursor"`
}

// Theme controls how the terminal board is drawn.
type Theme struct {
	Colors  ThemeColors  `json:"colors"`
	Symbols ThemeSymbols `json:"symbols"`
}

// DefaultTheme returns the built-in red and yellow theme.
func DefaultTheme() *Theme {
	return &Theme{
		Colors: ThemeColors{
			Board:     18,
			Player1:   196,
			Player2:   226,
			Empty:     244,
			Cursor:    46,
			LastDrop:  24,
			HintError: 203,
		},
		Symbols: ThemeSymbols{
			Player1: '●',
			Player2: '●',
			Empty:   '·',
			Cursor:  '▼',
		},
	}
}

// Validate rejects control characters as symbols.
func (t *Theme) Validate() error {
	symbols := []rune{t.Symbols.Player1, t.Symbols.Player2, t.Symbols.Empty, t.Symbols.Cursor}
	for _, r := range symbols {
		if r < 32 || (r >= 127 && r <= 159) {
			return fmt.Errorf("%w: unicode characters 0-31 and 127-159 are not allowed", ErrInvalidTheme)
		}
	}
	colors := []int{t.Colors.Board, t.Colors.Player1, t.Colors.Player2, t.Colors.Empty, t.Colors.Cursor, t.Colors.LastDrop, t.Colors.HintError}
	for _, c := range colors {
		if c < 0 || c > 255 {
			return fmt.Errorf("%w: colour %d is outside the 256-colour palette", ErrInvalidTheme, c)
		}
	}
	return nil
}

// LoadTheme reads the user theme from the XDG config directories, falling back
// to DefaultTheme when none exists.
func LoadTheme() (*Theme, error) {
	path, err := xdg.SearchConfigFile(themeFile)
	if err != nil {
		return DefaultTheme(), nil
	}
	return loadThemeFile(path)
}

// SaveTheme writes t to the user's XDG config directory.
func SaveTheme(t *Theme) (string, error) {
	path, err := xdg.ConfigFile(themeFile)
	if err != nil {
		return "", err
	}
	return path, saveThemeFile(path, t)
}

// loadThemeFile overlays the file onto the default theme, so partial files work.
func loadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := json.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme %s: %w", path, err)
	}
	if err := theme.Validate(); err != nil {
		return nil, err
	}
	return theme, nil
}

func saveThemeFile(path string, t *Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0664)
}
