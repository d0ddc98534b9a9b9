package engine

// window is a direction step used by the anchor scan
type window struct {
	dy, dx int
}

// Horizontal, vertical, diagonal down-right and diagonal down-left.
var windows = [...]window{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

func (e *GameEngine) inBounds(y, x int) bool {
	return y >= 0 && y < e.height && x >= 0 && x < e.width
}

// findSpotForColumn returns the lowest empty row in column, scanning from the
// bottom up. Pieces are only ever written there, so columns never have gaps.
func (e *GameEngine) findSpotForColumn(x int) (int, bool) {
	for y := e.height - 1; y >= 0; y-- {
		if e.board[y][x] == Empty {
			return y, true
		}
	}
	return -1, false
}

// wins reports whether the four cells starting at (y, x) and stepping by w are
// all on the board and all owned by player.
func (e *GameEngine) wins(y, x int, w window, player PlayerID) bool {
	for i := 0; i < ToWin; i++ {
		cy, cx := y+w.dy*i, x+w.dx*i
		if !e.inBounds(cy, cx) || e.board[cy][cx] != player {
			return false
		}
	}
	return true
}

// checkForWin uses every cell as an anchor and tests the four windows from it.
func (e *GameEngine) checkForWin(player PlayerID) bool {
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			for _, w := range windows {
				if e.wins(y, x, w, player) {
					return true
				}
			}
		}
	}
	return false
}

// topRowFilled doubles as a full-board check because columns fill bottom-up.
func (e *GameEngine) topRowFilled() bool {
	for _, cell := range e.board[0] {
		if cell == Empty {
			return false
		}
	}
	return true
}

// CountWindows returns how many four-cell windows fit on a board of the given
// size, per direction name.
func CountWindows(width, height int) map[string]int {
	names := [...]string{"horizontal", "vertical", "diagonal_down_right", "diagonal_down_left"}
	counts := make(map[string]int, len(names))
	probe := &GameEngine{width: width, height: height}

	for i, w := range windows {
		n := 0
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				end := ToWin - 1
				if probe.inBounds(y+w.dy*end, x+w.dx*end) {
					n++
				}
			}
		}
		counts[names[i]] = n
	}
	return counts
}
