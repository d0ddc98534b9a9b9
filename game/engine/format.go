package engine

import (
	"strconv"
	"strings"
)

// Symbol returns the single-character board mark for a cell
func Symbol(c Cell) string {
	switch c {
	case Player1:
		return "X"
	case Player2:
		return "O"
	}
	return "."
}

// FormatBoard renders a state as plain text, column indexes on top, row 0 first.
func FormatBoard(state *GameState) string {
	if state == nil || state.Width == 0 {
		return ""
	}

	var b strings.Builder
	for x := 0; x < state.Width; x++ {
		if x > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(x % 10))
	}
	b.WriteByte('\n')

	for _, row := range state.Grid {
		for x, cell := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(Symbol(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
