// Package ui draws a Connect Four board in the terminal with tview and lets
// two players share the keyboard.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// BoardUI is a tview primitive around an in-process engine.
type BoardUI struct {
	Box *tview.Box

	eng     engine.Engine
	hint    *tview.TextView
	theme   *Theme
	styles  []tcell.Color
	selCol  int
	lastRow int
	lastCol int
	errMsg  string
}

// NewBoard creates a board view. hint may be nil.
func NewBoard(eng engine.Engine, theme *Theme, hint *tview.TextView) *BoardUI {
	if theme == nil {
		theme = DefaultTheme()
	}
	b := &BoardUI{
		Box:     tview.NewBox(),
		eng:     eng,
		hint:    hint,
		selCol:  eng.Width() / 2,
		lastRow: -1,
		lastCol: -1,
	}
	b.SetTheme(theme)
	b.Box.SetDrawFunc(b.draw)
	b.refreshHint()
	return b
}

// SetTheme switches colours and symbols.
func (b *BoardUI) SetTheme(t *Theme) {
	b.theme = t
	b.styles = []tcell.Color{
		tcell.PaletteColor(t.Colors.Empty),     // 0
		tcell.PaletteColor(t.Colors.Player1),   // 1
		tcell.PaletteColor(t.Colors.Player2),   // 2
		tcell.PaletteColor(t.Colors.Board),     // 3
		tcell.PaletteColor(t.Colors.Cursor),    // 4
		tcell.PaletteColor(t.Colors.LastDrop),  // 5
		tcell.PaletteColor(t.Colors.HintError), // 6
	}
}

// SelectedColumn returns the column under the cursor.
func (b *BoardUI) SelectedColumn() int {
	return b.selCol
}

// MoveSelection moves the cursor by dx columns, stopping at the edges. While
// the game is on, full columns are skipped.
func (b *BoardUI) MoveSelection(dx int) {
	if dx == 0 {
		return
	}
	playing := !b.eng.GetStatus().IsTerminal()
	for col := b.selCol + dx; col >= 0 && col < b.eng.Width(); col += dx {
		if !playing || b.eng.CanDrop(col) {
			b.selCol = col
			return
		}
	}
}

// Drop drops the current player's piece into the selected column.
func (b *BoardUI) Drop() (*engine.DropResult, error) {
	result, err := b.eng.DropPiece(b.selCol)
	if err != nil {
		b.errMsg = err.Error()
		b.refreshHint()
		return nil, err
	}
	b.errMsg = ""
	b.lastRow, b.lastCol = result.Row, result.Column
	b.refreshHint()
	return result, nil
}

// Reset starts a new game on a board of the same size.
func (b *BoardUI) Reset() error {
	if err := b.eng.Reset(b.eng.Width(), b.eng.Height()); err != nil {
		return err
	}
	b.errMsg = ""
	b.lastRow, b.lastCol = -1, -1
	b.refreshHint()
	return nil
}

// HandleKey applies a key press and returns nil when it was consumed.
func (b *BoardUI) HandleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyLeft:
		b.MoveSelection(-1)
		return nil
	case tcell.KeyRight:
		b.MoveSelection(1)
		return nil
	case tcell.KeyEnter:
		b.Drop()
		return nil
	case tcell.KeyRune:
		r := event.Rune()
		switch {
		case r == 'h':
			b.MoveSelection(-1)
		case r == 'l':
			b.MoveSelection(1)
		case r == ' ':
			b.Drop()
		case r == 'r':
			b.Reset()
		case r >= '1' && r <= '9':
			col := int(r - '1')
			if col >= b.eng.Width() {
				return event
			}
			b.selCol = col
			b.Drop()
		default:
			return event
		}
		return nil
	}
	return event
}

// HintText is the status shown next to the board.
func (b *BoardUI) HintText() string {
	var status string
	switch b.eng.GetStatus() {
	case engine.StatusWon:
		status = fmt.Sprintf("───── Game Over ─────\n\n  %s won!\n", b.eng.Winner())
	case engine.StatusTied:
		status = "───── Game Over ─────\n\n  Tie!\n"
	default:
		status = fmt.Sprintf("  %c %s to move\n", b.symbol(b.eng.CurrentPlayer()), b.eng.CurrentPlayer())
		if open := b.eng.GetPossibleColumns(); len(open) < b.eng.Width() {
			labels := make([]string, len(open))
			for i, col := range open {
				labels[i] = strconv.Itoa(col + 1)
			}
			status += fmt.Sprintf("  Open columns: %s\n", strings.Join(labels, " "))
		}
	}

	if b.errMsg != "" {
		status += fmt.Sprintf("\n  [#%06x]%s[-]\n", b.styles[6].Hex(), b.errMsg)
	}

	return status + `
  h/l ←→ move   ⏎ drop
  1-9 drop   r reset   q quit`
}

func (b *BoardUI) refreshHint() {
	if b.hint == nil {
		return
	}
	b.hint.SetText(b.HintText())
}

func (b *BoardUI) symbol(p engine.PlayerID) rune {
	switch p {
	case engine.Player1:
		return b.theme.Symbols.Player1
	case engine.Player2:
		return b.theme.Symbols.Player2
	}
	return b.theme.Symbols.Empty
}

// draw paints one header row for the cursor, then the grid with row 0 on top.
// Each cell is two characters wide so the board looks square.
func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	w, h := b.eng.Width(), b.eng.Height()
	if w == 0 {
		return x, y, 1, 1
	}

	bg := tcell.StyleDefault.Background(b.styles[3])
	if !b.eng.GetStatus().IsTerminal() {
		drawCell(screen, tcell.StyleDefault.Foreground(b.styles[4]), b.theme.Symbols.Cursor, b.selCol, 0, x, y)
	}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			cell, _ := b.eng.GetCell(row, col)
			style := bg.Foreground(b.styles[cell])
			if row == b.lastRow && col == b.lastCol {
				style = style.Background(b.styles[5])
			}
			drawCell(screen, style, b.symbol(cell), col, row+1, x, y)
		}
	}

	for col := 0; col < w; col++ {
		label := rune('0' + (col+1)%10)
		drawCell(screen, tcell.StyleDefault, label, col, h+1, x, y)
	}

	return x, y, w * 2, h + 2
}

func drawCell(s tcell.Screen, style tcell.Style, r rune, col, row, left, top int) {
	s.SetContent(left+col*2, top+row, r, nil, style)
	s.SetContent(left+col*2+1, top+row, ' ', nil, style)
}
