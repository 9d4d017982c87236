package session

import (
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/mo-shahab/go-pong-mvc/client"
	"github.com/mo-shahab/go-pong-mvc/config"
)

// ErrFull is returned by Create when the session limit has been reached.
var ErrFull = errors.New("session limit reached")

// Manager keeps track of the running sessions.
type Manager struct {
	Sessions    map[string]*Session
	MaxSessions int
	Mu          sync.Mutex
}

// NewManager creates a Manager allowing at most maxSessions sessions. Zero
// means no limit.
func NewManager(maxSessions int) *Manager {
	return &Manager{
		Sessions:    make(map[string]*Session),
		MaxSessions: maxSessions,
	}
}

// Create makes a new session for the client. The session is not started.
func (m *Manager) Create(c *client.Client, cfg config.Config) (*Session, error) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	if m.MaxSessions > 0 && len(m.Sessions) >= m.MaxSessions {
		return nil, ErrFull
	}

	id := generateSessionId()
	for m.Sessions[id] != nil {
		id = generateSessionId()
	}

	s := newSession(id, c, cfg)
	m.Sessions[id] = s
	c.SessionID = id

	log.Printf("Created session %s for client %s", id, c.ID)
	return s, nil
}

// Remove stops the session and forgets it. Removing an unknown session does
// nothing.
func (m *Manager) Remove(id string) {
	m.Mu.Lock()
	s, exists := m.Sessions[id]
	delete(m.Sessions, id)
	m.Mu.Unlock()

	if !exists {
		return
	}

	s.stop()
	log.Printf("Session %s closed: %v", id, s.Game.Snapshot())
}

// CloseAll removes every session.
func (m *Manager) CloseAll() {
	m.Mu.Lock()
	ids := make([]string, 0, len(m.Sessions))
	for id := range m.Sessions {
		ids = append(ids, id)
	}
	m.Mu.Unlock()

	for _, id := range ids {
		m.Remove(id)
	}
}

// Get returns the session with the id.
func (m *Manager) Get(id string) (*Session, bool) {
	m.Mu.Lock()
	defer m.Mu.Unlock()

	s, exists := m.Sessions[id]
	return s, exists
}

// Len returns the number of sessions.
func (m *Manager) Len() int {
	m.Mu.Lock()
	defer m.Mu.Unlock()
	return len(m.Sessions)
}

// helpers
func generateSessionId() string {
	return uuid.New().String()[:8]
}
