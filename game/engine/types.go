package engine

import "fmt"

// PlayerID identifies who owns a cell. The zero value is an empty cell.
type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2

	// Validation constants
	ToWin          = 4
	DefaultWidth   = 7
	DefaultHeight  = 6
	MaxBoardLength = 50
)

// Opponent returns the other player. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (p PlayerID) String() string {
	if p == Empty {
		return "empty"
	}
	return fmt.Sprintf("Player %d", int(p))
}

// Cell is a single board slot
type Cell = PlayerID

// GameStatus represents the lifecycle of a game
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusWon        GameStatus = "won"
	StatusTied       GameStatus = "tied"
)

// IsTerminal reports whether no further moves are accepted until reset
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusTied
}

// DropResult is what a successful drop reports to the caller
type DropResult struct {
	Row        int        `json:"row"`
	Column     int        `json:"column"`
	Player     PlayerID   `json:"player"`
	Status     GameStatus `json:"status"`
	Winner     PlayerID   `json:"winner,omitempty"`
	NextPlayer PlayerID   `json:"next_player"`
}

// GameState is a copy of the board and status, safe to hand to presentation layers
type GameState struct {
	Width         int          `json:"width"`
	Height        int          `json:"height"`
	Grid          [][]PlayerID `json:"grid"`
	CurrentPlayer PlayerID     `json:"current_player"`
	Status        GameStatus   `json:"status"`
	Winner        PlayerID     `json:"winner,omitempty"`
	Message       string       `json:"message"`
}

// GameConfig is a named board preset
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Error is an engine failure kind. Every failure leaves the game untouched.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Code returns the machine-friendly identifier of the failure
func (e Error) Code() string {
	switch e {
	case ErrInvalidDimension:
		return "invalid_dimension"
	case ErrInvalidColumn:
		return "invalid_column"
	case ErrColumnFull:
		return "column_full"
	case ErrGameAlreadyOver:
		return "game_already_over"
	case ErrInvalidCell:
		return "invalid_cell"
	}
	return "unknown"
}

const (
	ErrInvalidDimension Error = "board width and height must be positive"
	ErrInvalidColumn    Error = "column is outside the board"
	ErrColumnFull       Error = "column is full"
	ErrGameAlreadyOver  Error = "game is over, start a new game"
	ErrInvalidCell      Error = "cell is outside the board"
)
