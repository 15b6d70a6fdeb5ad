package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions is the in-memory session registry, keyed by the session
// cookie value. State lives for the process lifetime only; there is no
// persistence across restarts.
type Sessions struct {
	mu           sync.Mutex
	byID         map[string]*Session
	defaultTitle string
}

// NewSessions returns an empty registry. New sessions start with the
// given default quotation title.
func NewSessions(defaultTitle string) *Sessions {
	return &Sessions{
		byID:         map[string]*Session{},
		defaultTitle: defaultTitle,
	}
}

// Get returns the session for the given ID, if it exists.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	return s, ok
}

// Create registers and returns a fresh session with a new UUID.
func (r *Sessions) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := newSession(uuid.NewString(), r.defaultTitle)
	r.byID[s.id] = s
	return s
}

// GetOrCreate returns the session for the given ID, creating a new one
// when the ID is empty or unknown (e.g. after a server restart).
func (r *Sessions) GetOrCreate(id string) *Session {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s
		}
	}
	return r.Create()
}
