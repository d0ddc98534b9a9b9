package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Chakipaki/connect-four-oo/game/engine"
	"github.com/Chakipaki/connect-four-oo/game/service"
)

var (
	ErrSessionNotFound      = service.ErrSessionNotFound
	ErrSessionIDExhausted   = service.ErrSessionIDExhausted
	ErrSessionAlreadyExists = errors.New("session already exists")
	ErrInvalidSessionID     = errors.New("invalid session ID")
)

const (
	maxSessionIDLength = 32

	// Generated IDs start at 2 random bytes and widen to 4 once the short
	// space is crowded.
	shortIDBytes  = 2
	wideIDBytes   = 4
	maxIDAttempts = 32
)

// Manager handles game session lifecycle
type Manager struct {
	sessions map[string]*service.Session
	mu       sync.RWMutex
	randRead func([]byte) (int, error)
}

// NewManager creates a new session manager
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*service.Session),
		randRead: rand.Read,
	}
}

// Create creates a new session with the given ID and configuration.
// An empty ID gets a random one.
func (m *Manager) Create(id string, config *engine.GameConfig) (*service.Session, error) {
	if id != "" && !validSessionID(id) {
		return nil, ErrInvalidSessionID
	}
	if config == nil {
		config = engine.DefaultConfig()
	}

	eng, err := engine.NewEngineFromConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id, err = m.generateSessionID()
		if err != nil {
			return nil, err
		}
	} else if m.sessionExists(id) {
		return nil, ErrSessionAlreadyExists
	}

	session := service.NewSession(id, eng, config)
	m.sessions[strings.ToLower(id)] = session
	return session, nil
}

// Get retrieves a session by ID (case-insensitive)
func (m *Manager) Get(id string) (*service.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[strings.ToLower(id)]
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// List returns all active sessions, oldest first
func (m *Manager) List() []*service.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

// Delete removes a session
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	if _, exists := m.sessions[lowerID]; !exists {
		return ErrSessionNotFound
	}
	delete(m.sessions, lowerID)
	return nil
}

// UpdateLastAccessed updates the last accessed time for a session
func (m *Manager) UpdateLastAccessed(id string) error {
	m.mu.RLock()
	session, exists := m.sessions[strings.ToLower(id)]
	m.mu.RUnlock()

	if !exists {
		return ErrSessionNotFound
	}
	session.Touch()
	return nil
}

// CleanupExpiredSessions removes sessions that haven't been accessed in the given duration
func (m *Manager) CleanupExpiredSessions(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0

	for id, session := range m.sessions {
		if session.LastAccess().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}

	return removed
}

// Count returns the number of active sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// generateSessionID returns a random hex ID not already in use, 4 characters
// while they are easy to find and 8 after that. Callers must hold the write lock.
func (m *Manager) generateSessionID() (string, error) {
	for _, size := range []int{shortIDBytes, wideIDBytes} {
		bytes := make([]byte, size)
		for attempt := 0; attempt < maxIDAttempts; attempt++ {
			if _, err := m.randRead(bytes); err != nil {
				return "", fmt.Errorf("failed to generate session ID: %w", err)
			}
			id := hex.EncodeToString(bytes)
			if !m.sessionExists(id) {
				return id, nil
			}
		}
	}
	return "", ErrSessionIDExhausted
}

// sessionExists checks if a session exists (case-insensitive)
func (m *Manager) sessionExists(id string) bool {
	_, exists := m.sessions[strings.ToLower(id)]
	return exists
}

func validSessionID(id string) bool {
	if len(id) > maxSessionIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}
