package engine

import "fmt"

// Engine provides the main interface for game operations
type Engine interface {
	// Game state management
	Reset(width, height int) error
	GetStatus() GameStatus
	Winner() PlayerID
	CurrentPlayer() PlayerID
	Snapshot() *GameState

	// Board
	Width() int
	Height() int
	GetCell(row, column int) (Cell, error)

	// Moves
	DropPiece(column int) (*DropResult, error)
	CanDrop(column int) bool
	GetPossibleColumns() []int
}

// GameEngine implements the Engine interface. It is not safe for concurrent use;
// callers sharing one engine must serialise access.
type GameEngine struct {
	board   [][]PlayerID
	width   int
	height  int
	current PlayerID
	status  GameStatus
	winner  PlayerID
}

// NewEngine creates a new game engine with an empty board of the given size
func NewEngine(width, height int) (*GameEngine, error) {
	e := &GameEngine{}
	if err := e.Reset(width, height); err != nil {
		return nil, err
	}
	return e, nil
}

// NewEngineFromConfig creates a new game engine sized by a preset
func NewEngineFromConfig(config *GameConfig) (*GameEngine, error) {
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	return NewEngine(config.Width, config.Height)
}

// NewEngineWithDefaults creates a new game engine with the classic 7x6 board
func NewEngineWithDefaults() *GameEngine {
	e, _ := NewEngine(DefaultWidth, DefaultHeight)
	return e
}

// Reset clears the board to the given size, hands the turn to Player1 and
// marks the game in progress. On error the previous game is kept as is.
func (e *GameEngine) Reset(width, height int) error {
	if width < 1 || height < 1 {
		return ErrInvalidDimension
	}

	board := make([][]PlayerID, height)
	for y := range board {
		board[y] = make([]PlayerID, width)
	}

	e.board = board
	e.width = width
	e.height = height
	e.current = Player1
	e.status = StatusInProgress
	e.winner = Empty
	return nil
}

// GetStatus returns the current game status
func (e *GameEngine) GetStatus() GameStatus {
	return e.status
}

// Winner returns the winning player, or Empty when nobody has won
func (e *GameEngine) Winner() PlayerID {
	return e.winner
}

// CurrentPlayer returns the player whose turn it is. After a terminal move it
// stays on the player who made that move.
func (e *GameEngine) CurrentPlayer() PlayerID {
	return e.current
}

func (e *GameEngine) Width() int {
	return e.width
}

func (e *GameEngine) Height() int {
	return e.height
}

// GetCell returns the content of a cell for rendering
func (e *GameEngine) GetCell(row, column int) (Cell, error) {
	if !e.inBounds(row, column) {
		return Empty, ErrInvalidCell
	}
	return e.board[row][column], nil
}

// DropPiece drops the current player's piece into column. It evaluates win,
// then tie, then switches turns, in that order.
func (e *GameEngine) DropPiece(column int) (*DropResult, error) {
	if e.status.IsTerminal() {
		return nil, ErrGameAlreadyOver
	}
	if column < 0 || column >= e.width {
		return nil, ErrInvalidColumn
	}

	row, ok := e.findSpotForColumn(column)
	if !ok {
		return nil, ErrColumnFull
	}

	player := e.current
	e.board[row][column] = player

	result := &DropResult{
		Row:    row,
		Column: column,
		Player: player,
	}

	switch {
	case e.checkForWin(player):
		e.status = StatusWon
		e.winner = player
		result.Winner = player
	case e.topRowFilled():
		e.status = StatusTied
	default:
		e.current = player.Opponent()
	}

	result.Status = e.status
	result.NextPlayer = e.current
	return result, nil
}

// CanDrop reports whether a drop into column would be accepted
func (e *GameEngine) CanDrop(column int) bool {
	if e.status.IsTerminal() || column < 0 || column >= e.width {
		return false
	}
	_, ok := e.findSpotForColumn(column)
	return ok
}

// GetPossibleColumns returns every column that still accepts a piece
func (e *GameEngine) GetPossibleColumns() []int {
	var columns []int
	for x := 0; x < e.width; x++ {
		if e.CanDrop(x) {
			columns = append(columns, x)
		}
	}
	return columns
}

// Snapshot returns a deep copy of the current game
func (e *GameEngine) Snapshot() *GameState {
	grid := make([][]PlayerID, len(e.board))
	for y := range e.board {
		grid[y] = make([]PlayerID, len(e.board[y]))
		copy(grid[y], e.board[y])
	}

	return &GameState{
		Width:         e.width,
		Height:        e.height,
		Grid:          grid,
		CurrentPlayer: e.current,
		Status:        e.status,
		Winner:        e.winner,
		Message:       e.message(),
	}
}

func (e *GameEngine) message() string {
	switch e.status {
	case StatusWon:
		return fmt.Sprintf("%s won!", e.winner)
	case StatusTied:
		return "Tie!"
	}
	return fmt.Sprintf("%s to move", e.current)
}
