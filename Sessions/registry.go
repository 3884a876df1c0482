package Sessions

import (
	"sync"
	"time"
)

// Registry is the single source of truth for live sessions, keyed by token.
// Login puts a session in, logout takes it out, and Resolve purges an
// expired session the first time it is seen — later lookups just miss.
type Registry struct {
	mu      sync.Mutex
	byToken map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{byToken: make(map[string]Session)}
}

func (r *Registry) Put(s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[s.Token] = s
}

// Clear removes the session for a token and reports whether one was there.
func (r *Registry) Clear(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.byToken[token]
	delete(r.byToken, token)
	return ok
}

// Resolve returns the live session for a token. An expired session is
// removed as a side effect and reported as absent.
func (r *Registry) Resolve(token string, now time.Time) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[token]
	if !ok {
		return nil, false
	}
	if s.Expired(now) {
		delete(r.byToken, token)
		return nil, false
	}
	return &s, true
}

// Check runs the guard against whatever the registry holds for the token.
func (r *Registry) Check(token string, requiredRoles []string, now time.Time) Decision {
	s, ok := r.Resolve(token, now)
	if !ok {
		return DenyUnauthenticated
	}
	return Authorize(s, requiredRoles, now)
}

// Active is the process-wide registry.
var Active = NewRegistry()
