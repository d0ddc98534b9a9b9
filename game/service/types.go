package service

import (
	"time"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

// CreateSessionRequest selects the board for a new game. An explicit width and
// height take precedence over the preset.
type CreateSessionRequest struct {
	ConfigID string `json:"config_id,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// DropOutcome contains the result of a successful drop
type DropOutcome struct {
	Result    *engine.DropResult `json:"result"`
	GameState *engine.GameState  `json:"game_state"`
	Message   string             `json:"message"`
	Events    []GameEvent        `json:"events,omitempty"`
}

// GameEvent represents something that happened during play
type GameEvent struct {
	Type      string          `json:"type"` // "drop", "win", "tie", "reset"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Player    engine.PlayerID `json:"player,omitempty"`
	Row       int             `json:"row"`
	Column    int             `json:"column"`
}

// ConfigInfo provides information about a board preset
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}
