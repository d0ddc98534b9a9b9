package ui

import (
	"strings"
	"testing"

	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, width, height int) (*BoardUI, *engine.GameEngine) {
	t.Helper()
	eng, err := engine.NewEngine(width, height)
	require.NoError(t, err)
	return NewBoard(eng, nil, tview.NewTextView()), eng
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNewBoard_CursorStartsInMiddle(t *testing.T) {
	b, _ := newTestBoard(t, 7, 6)
	assert.Equal(t, 3, b.SelectedColumn())

	b, _ = newTestBoard(t, 1, 1)
	assert.Equal(t, 0, b.SelectedColumn())
}

func TestMoveSelection_StopsAtEdges(t *testing.T) {
	b, _ := newTestBoard(t, 4, 4)

	for i := 0; i < 10; i++ {
		b.MoveSelection(1)
	}
	assert.Equal(t, 3, b.SelectedColumn())

	for i := 0; i < 10; i++ {
		b.MoveSelection(-1)
	}
	assert.Equal(t, 0, b.SelectedColumn())
}

func TestDrop(t *testing.T) {
	b, eng := newTestBoard(t, 3, 2)

	result, err := b.Drop()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Row)
	assert.Equal(t, 1, result.Column)
	assert.Equal(t, engine.Player2, eng.CurrentPlayer())

	_, err = b.Drop()
	require.NoError(t, err)

	_, err = b.Drop()
	assert.ErrorIs(t, err, engine.ErrColumnFull)
	assert.Contains(t, b.HintText(), "column is full")

	b.MoveSelection(1)
	_, err = b.Drop()
	require.NoError(t, err)
	assert.NotContains(t, b.HintText(), "column is full")
}

func TestMoveSelection_SkipsFullColumns(t *testing.T) {
	b, _ := newTestBoard(t, 3, 2)

	b.Drop()
	b.Drop()

	b.MoveSelection(1)
	assert.Equal(t, 2, b.SelectedColumn())

	b.MoveSelection(-1)
	assert.Equal(t, 0, b.SelectedColumn(), "full column 1 should be skipped")

	b.MoveSelection(1)
	assert.Equal(t, 2, b.SelectedColumn())

	b.MoveSelection(0)
	assert.Equal(t, 2, b.SelectedColumn())
}

func TestHintText_OpenColumns(t *testing.T) {
	b, _ := newTestBoard(t, 3, 2)
	assert.NotContains(t, b.HintText(), "Open columns")

	b.Drop()
	b.Drop()
	assert.Contains(t, b.HintText(), "Open columns: 1 3")
}

func TestHandleKey(t *testing.T) {
	b, eng := newTestBoard(t, 7, 6)

	assert.Nil(t, b.HandleKey(key('l')))
	assert.Equal(t, 4, b.SelectedColumn())

	assert.Nil(t, b.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.Nil(t, b.HandleKey(key('h')))
	assert.Equal(t, 2, b.SelectedColumn())

	assert.Nil(t, b.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	cell, err := eng.GetCell(5, 2)
	require.NoError(t, err)
	assert.Equal(t, engine.Player1, cell)

	assert.Nil(t, b.HandleKey(key('1')))
	assert.Equal(t, 0, b.SelectedColumn())
	cell, _ = eng.GetCell(5, 0)
	assert.Equal(t, engine.Player2, cell)

	assert.NotNil(t, b.HandleKey(key('8')), "column 8 does not exist on a 7 wide board")
	assert.NotNil(t, b.HandleKey(key('x')))
	assert.NotNil(t, b.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)))

	assert.Nil(t, b.HandleKey(key('r')))
	cell, _ = eng.GetCell(5, 2)
	assert.Equal(t, engine.Empty, cell)
	assert.Equal(t, engine.Player1, eng.CurrentPlayer())
}

func TestHintText(t *testing.T) {
	b, _ := newTestBoard(t, 7, 6)
	assert.Contains(t, b.HintText(), "Player 1 to move")

	for _, r := range "1212121" {
		b.HandleKey(key(r))
	}
	hint := b.HintText()
	assert.Contains(t, hint, "Game Over")
	assert.Contains(t, hint, "Player 1 won!")

	_, err := b.Drop()
	assert.ErrorIs(t, err, engine.ErrGameAlreadyOver)

	tie, _ := newTestBoard(t, 1, 1)
	_, err = tie.Drop()
	require.NoError(t, err)
	assert.Contains(t, tie.HintText(), "Tie!")
}

func TestDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(40, 20)

	b, _ := newTestBoard(t, 4, 3)
	b.HandleKey(key('1'))
	b.HandleKey(key('4'))

	_, _, w, h := b.draw(screen, 0, 0, 40, 20)
	assert.Equal(t, 8, w)
	assert.Equal(t, 5, h)

	theme := DefaultTheme()
	runeAt := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	assert.Equal(t, theme.Symbols.Cursor, runeAt(3*2, 0))
	assert.Equal(t, theme.Symbols.Player1, runeAt(0, 3))
	assert.Equal(t, theme.Symbols.Player2, runeAt(3*2, 3))
	assert.Equal(t, theme.Symbols.Empty, runeAt(0, 1))
	assert.Equal(t, '1', runeAt(0, 4))

	_, _, style, _ := screen.GetContent(3*2, 3)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(theme.Colors.LastDrop), bg)
}

func TestSetTheme(t *testing.T) {
	b, _ := newTestBoard(t, 7, 6)
	theme := DefaultTheme()
	theme.Symbols.Player1 = 'X'
	b.SetTheme(theme)
	assert.True(t, strings.Contains(b.HintText(), "X Player 1 to move"))
}
