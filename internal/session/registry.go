// Package session issues opaque bearer tokens, each owning one cart for the
// lifetime of the token. Sessions are memory-only: expiry or restart drops
// the cart, matching the single-browser-session model of the storefront.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"zouqly-storefront/internal/cart"
	"zouqly-storefront/internal/domain"
)

// Session is the per-token state. Mutating callers hold the session lock so
// that cart updates and checkout transitions are serialized per session.
type Session struct {
	ID        string
	Cart      *cart.Cart
	CreatedAt time.Time

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Registry tracks live sessions by token with a fixed TTL from issue time.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

type entry struct {
	sess      *Session
	expiresAt time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue creates a session and returns it with its bearer token.
func (r *Registry) Issue() (token string, sess *Session) {
	token = uuid.NewString()
	now := r.now()
	sess = &Session{
		ID:        token,
		Cart:      cart.New(),
		CreatedAt: now,
	}
	r.mu.Lock()
	r.sessions[token] = &entry{sess: sess, expiresAt: now.Add(r.ttl)}
	r.mu.Unlock()
	return token, sess
}

// Lookup resolves a bearer token. Unknown or expired tokens return
// domain.ErrSessionExpired; expired entries are dropped on access.
func (r *Registry) Lookup(token string) (*Session, error) {
	r.mu.RLock()
	e, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionExpired
	}
	if r.now().After(e.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return nil, domain.ErrSessionExpired
	}
	return e.sess, nil
}

// TTLSeconds reports the session lifetime for token responses.
func (r *Registry) TTLSeconds() int {
	return int(r.ttl.Seconds())
}
