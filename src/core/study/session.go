package study

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"docsum/src/chunk"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is one entry in a session's append-only conversation log.
type ConversationTurn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Session owns all mutable state for one user's interaction with one
// uploaded document: its chunks, the final summary once produced, and the
// conversation log. Sessions are never shared across users.
type Session struct {
	ID           string
	UserID       string
	DocumentName string
	Chunks       []chunk.Chunk
	CreatedAt    time.Time

	mu           sync.RWMutex
	finalSummary string
	turns        []ConversationTurn
}

func NewSession(userID, documentName string, chunks []chunk.Chunk) *Session {
	return &Session{
		ID:           uuid.New().String(),
		UserID:       userID,
		DocumentName: documentName,
		Chunks:       chunks,
		CreatedAt:    time.Now().UTC(),
	}
}

// FinalSummary returns the summary and whether one has been produced yet.
func (s *Session) FinalSummary() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalSummary, s.finalSummary != ""
}

func (s *Session) SetFinalSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalSummary = text
}

// AppendTurn adds one turn to the conversation log. The log only grows
// within a session, it is never truncated.
func (s *Session) AppendTurn(role Role, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, ConversationTurn{
		Role:      role,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

// History returns a copy of the conversation log in append order.
func (s *Session) History() []ConversationTurn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConversationTurn, len(s.turns))
	copy(out, s.turns)
	return out
}

// SessionStore holds active sessions.
type SessionStore interface {
	Put(session *Session)
	Get(id string) (*Session, error)
	Delete(id string)
}

// InMemorySessionStore keeps sessions in a mutex-guarded map. Each session
// is isolated; nothing is shared between entries.
type InMemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{sessions: make(map[string]*Session)}
}

func (s *InMemorySessionStore) Put(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *InMemorySessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *InMemorySessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
