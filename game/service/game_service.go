package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

var (
	// ErrSessionNotFound is returned when no game is registered under an ID
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionIDExhausted is returned when no free session ID could be found
	ErrSessionIDExhausted = errors.New("no free session ID, try again later")
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Drop(ctx context.Context, sessionID string, column int) (*DropOutcome, error)
	Reset(ctx context.Context, sessionID string, width, height int) (*engine.GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetCell(ctx context.Context, sessionID string, row, column int) (engine.Cell, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
}

// ConfigManager handles board preset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
}

// Session represents an active game. All engine access goes through the
// session methods so that at most one operation runs on a game at a time.
// CreatedAt never changes after NewSession.
type Session struct {
	ID        string
	Engine    *engine.GameEngine
	CreatedAt time.Time

	mu           sync.Mutex
	config       *engine.GameConfig
	lastAccessed time.Time
}

// NewSession wraps eng in a session created now
func NewSession(id string, eng *engine.GameEngine, config *engine.GameConfig) *Session {
	now := time.Now()
	return &Session{
		ID:           id,
		Engine:       eng,
		CreatedAt:    now,
		config:       config,
		lastAccessed: now,
	}
}

// Touch records an access at the current time
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccessed = time.Now()
}

// LastAccess returns when the session was last used
func (s *Session) LastAccess() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccessed
}

// Preset returns the board preset the current game was started with
func (s *Session) Preset() *engine.GameConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Drop drops a piece for the player whose turn it is
func (s *Session) Drop(column int) (*engine.DropResult, *engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.Engine.DropPiece(column)
	if err != nil {
		return nil, nil, err
	}
	return result, s.Engine.Snapshot(), nil
}

// Reset starts a new game. Zero width or height keeps the current size.
// A new size replaces the preset with a custom one.
func (s *Session) Reset(width, height int) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if width == 0 {
		width = s.Engine.Width()
	}
	if height == 0 {
		height = s.Engine.Height()
	}
	if width > engine.MaxBoardLength || height > engine.MaxBoardLength {
		return nil, engine.ErrInvalidDimension
	}
	resized := width != s.Engine.Width() || height != s.Engine.Height()
	if err := s.Engine.Reset(width, height); err != nil {
		return nil, err
	}
	if resized {
		s.config = customConfig(s.config, width, height)
	}
	return s.Engine.Snapshot(), nil
}

// Snapshot returns a copy of the current game
func (s *Session) Snapshot() *engine.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.Snapshot()
}

// Cell reads one cell of the board
func (s *Session) Cell(row, column int) (engine.Cell, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Engine.GetCell(row, column)
}

// customConfig copies base with a new size
func customConfig(base *engine.GameConfig, width, height int) *engine.GameConfig {
	custom := engine.GameConfig{}
	if base != nil {
		custom = *base
	}
	custom.Width = width
	custom.Height = height
	custom.Name = fmt.Sprintf("custom %dx%d", width, height)
	custom.Description = "Custom board size"
	return &custom
}
