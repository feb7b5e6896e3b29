package advisor

import (
	"sync"

	"github.com/google/uuid"
)

// maxSessionTurns caps the conversation history kept per session.
const maxSessionTurns = 10

// Turn is one message in an advice conversation.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// SessionStore holds conversation history. The advisor never owns session
// state; callers create, pass, and clear sessions explicitly.
type SessionStore interface {
	// NewSession mints a fresh session ID.
	NewSession() string
	// History returns the turns of a session, oldest first.
	History(sessionID string) []Turn
	// Append records turns on a session, trimming to the newest
	// maxSessionTurns entries.
	Append(sessionID string, turns ...Turn)
	// Clear removes a session.
	Clear(sessionID string)
}

// MemorySessionStore is an in-memory SessionStore, safe for concurrent use.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]Turn
}

// NewMemorySessionStore creates an empty session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string][]Turn)}
}

// NewSession mints a session ID.
func (s *MemorySessionStore) NewSession() string {
	return uuid.NewString()
}

// History returns a copy of the session's turns.
func (s *MemorySessionStore) History(sessionID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Turn(nil), s.sessions[sessionID]...)
}

// Append records turns, keeping only the newest maxSessionTurns.
func (s *MemorySessionStore) Append(sessionID string, turns ...Turn) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	history := append(s.sessions[sessionID], turns...)
	if len(history) > maxSessionTurns {
		history = history[len(history)-maxSessionTurns:]
	}
	s.sessions[sessionID] = history
}

// Clear removes a session.
func (s *MemorySessionStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
