package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThemeIsValid(t *testing.T) {
	assert.NoError(t, DefaultTheme().Validate())
}

func TestLoadThemeFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	t.Run("partial file keeps defaults", func(t *testing.T) {
		theme, err := loadThemeFile(write("partial.json", `{"colors": {"player1": 21}}`))
		require.NoError(t, err)
		assert.Equal(t, 21, theme.Colors.Player1)
		assert.Equal(t, DefaultTheme().Colors.Player2, theme.Colors.Player2)
		assert.Equal(t, DefaultTheme().Symbols, theme.Symbols)
	})

	t.Run("control character symbol", func(t *testing.T) {
		_, err := loadThemeFile(write("control.json", `{"symbols": {"empty": 7}}`))
		assert.ErrorIs(t, err, ErrInvalidTheme)
	})

	t.Run("colour outside palette", func(t *testing.T) {
		_, err := loadThemeFile(write("colour.json", `{"colors": {"board": 300}}`))
		assert.ErrorIs(t, err, ErrInvalidTheme)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := loadThemeFile(write("broken.json", `{ nope`))
		assert.Error(t, err)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := loadThemeFile(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}

func TestSaveThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	theme := DefaultTheme()
	theme.Symbols.Player2 = 'O'
	require.NoError(t, saveThemeFile(path, theme))

	loaded, err := loadThemeFile(path)
	require.NoError(t, err)
	assert.Equal(t, theme, loaded)

	theme.Symbols.Cursor = 0
	assert.ErrorIs(t, saveThemeFile(path, theme), ErrInvalidTheme)
}
