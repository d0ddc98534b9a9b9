package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Chakipaki/connect-four-oo/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a preset display name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// resolveConfig picks the board for a new session
func (s *gameServiceImpl) resolveConfig(req CreateSessionRequest) (*engine.GameConfig, error) {
	var base *engine.GameConfig
	if req.ConfigID != "" {
		config, err := s.configs.LoadConfig(req.ConfigID)
		if err != nil {
			availableConfigs, listErr := s.configs.ListConfigs()
			if listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, fmt.Errorf("config '%s' not found. Available configs: %v: %w", req.ConfigID, configIDs, err)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", req.ConfigID, err)
		}
		base = config
	} else {
		base = s.configs.GetDefault()
	}
	if base == nil {
		base = engine.DefaultConfig()
	}

	if req.Width == 0 && req.Height == 0 {
		return base, nil
	}

	width, height := base.Width, base.Height
	if req.Width != 0 {
		width = req.Width
	}
	if req.Height != 0 {
		height = req.Height
	}
	custom := customConfig(base, width, height)
	if err := engine.ValidateGameConfig(custom); err != nil {
		return nil, err
	}
	return custom, nil
}

func (s *gameServiceImpl) sessionInfo(sess *Session) *SessionInfo {
	preset := sess.Preset()
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     s.getConfigID(preset.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccess(),
		GameState:      sess.Snapshot(),
		GameConfig:     preset,
	}
}

func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error) {
	config, err := s.resolveConfig(req)
	if err != nil {
		return nil, err
	}

	// Let session manager generate the ID
	sess, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	info := s.sessionInfo(sess)
	if req.ConfigID != "" && req.Width == 0 && req.Height == 0 {
		info.ConfigName = strings.TrimSuffix(req.ConfigID, ".json")
	}
	return info, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, s.sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(sessionID)
}

// Drop drops a piece into column for the session's current player
func (s *gameServiceImpl) Drop(ctx context.Context, sessionID string, column int) (*DropOutcome, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result, state, err := sess.Drop(column)
	if err != nil {
		return nil, err
	}

	return &DropOutcome{
		Result:    result,
		GameState: state,
		Message:   state.Message,
		Events:    dropEvents(result, state),
	}, nil
}

// Reset starts a new game in the session
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID string, width, height int) (*engine.GameState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Reset(width, height)
}

// GetGameState returns a copy of the session's board
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.Snapshot(), nil
}

// GetCell reads one cell of the session's board
func (s *gameServiceImpl) GetCell(ctx context.Context, sessionID string, row, column int) (engine.Cell, error) {
	sess, err := s.getSession(sessionID)
	if err != nil {
		return engine.Empty, err
	}
	return sess.Cell(row, column)
}

// ListConfigs lists the available board presets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads one board preset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// dropEvents describes a drop and, when it ended the game, the outcome
func dropEvents(result *engine.DropResult, state *engine.GameState) []GameEvent {
	now := time.Now()
	events := []GameEvent{{
		Type:      "drop",
		Message:   fmt.Sprintf("%s dropped into column %d, landed on row %d", result.Player, result.Column, result.Row),
		Timestamp: now,
		Player:    result.Player,
		Row:       result.Row,
		Column:    result.Column,
	}}

	switch result.Status {
	case engine.StatusWon:
		events = append(events, GameEvent{
			Type:      "win",
			Message:   state.Message,
			Timestamp: now,
			Player:    result.Winner,
			Row:       result.Row,
			Column:    result.Column,
		})
	case engine.StatusTied:
		events = append(events, GameEvent{
			Type:      "tie",
			Message:   state.Message,
			Timestamp: now,
			Row:       result.Row,
			Column:    result.Column,
		})
	}
	return events
}
