package gamemaster

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registry keeps the sessions of a server in memory.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Create(settings Settings) *Session {
	session := NewSession(uuid.New().String(), settings)

	r.mu.Lock()
	r.sessions[session.ID()] = session
	r.mu.Unlock()

	log.Info().
		Str("session", session.ID()).
		Str("name", settings.Name).
		Str("difficulty", string(settings.Difficulty)).
		Int("depth", settings.Depth).
		Msg("session created")
	return session
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return session, nil
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
