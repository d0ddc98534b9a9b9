package ui

import (
	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// NewLayout places the board next to its status panel.
func NewLayout(board *BoardUI, hint *tview.TextView) *tview.Flex {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(board.Box, board.eng.Width()*2+2, 0, true).
		AddItem(hint, 34, 0, false).
		AddItem(nil, 0, 1, false)
}

// Run plays a local two-player game until the user quits.
func Run(eng engine.Engine, theme *Theme) error {
	app := tview.NewApplication()

	hint := tview.NewTextView().SetDynamicColors(true)
	hint.SetBorder(true)
	hint.SetBorderPadding(0, 0, 1, 1)
	hint.SetTitle(" Status ")
	hint.SetTitleAlign(tview.AlignLeft)

	board := NewBoard(eng, theme, hint)
	board.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			app.Stop()
			return nil
		}
		return board.HandleKey(event)
	})

	return app.SetRoot(NewLayout(board, hint), true).SetFocus(board.Box).Run()
}
