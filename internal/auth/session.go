package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	sharedauth "recruitment-backend/internal/shared/auth"
)

// SessionStore keeps server-side browser sessions in memory. Entries expire
// after the configured TTL and are purged lazily on lookup.
type SessionStore struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]sessionEntry
	now  func() time.Time
}

type sessionEntry struct {
	claims    sharedauth.Claims
	expiresAt time.Time
}

// NewSessionStore constructs a SessionStore. A non-positive ttl defaults to
// twelve hours.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionStore{
		ttl:  ttl,
		data: make(map[string]sessionEntry),
		now:  time.Now,
	}
}

// Create registers a new session for the given identity and returns its ID.
func (s *SessionStore) Create(claims sharedauth.Claims) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = sessionEntry{claims: claims, expiresAt: s.now().Add(s.ttl)}
	return id
}

// Resolve implements middleware.SessionResolver.
func (s *SessionStore) Resolve(sessionID string) (sharedauth.Claims, bool) {
	s.mu.RLock()
	entry, ok := s.data[sessionID]
	s.mu.RUnlock()
	if !ok {
		return sharedauth.Claims{}, false
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.data, sessionID)
		s.mu.Unlock()
		return sharedauth.Claims{}, false
	}
	return entry.claims, true
}

// Delete removes a session. Deleting an unknown ID is a no-op.
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

// TTL reports the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}
