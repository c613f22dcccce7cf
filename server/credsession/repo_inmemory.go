package credsession

import (
	"errors"
	"sync"
	"time"

	apperrors "github.com/jrsteele09/go-oauth-helper/internal/errors"
)

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Sessions for different browser sessions are isolated by session
// ID; expired entries are dropped lazily on Get.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewInMemoryRepo creates a new in-memory credential session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Upsert creates or updates a session, overwriting any prior value for the
// same session ID
func (r *InMemoryRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}
	if session.ClientID == "" {
		return apperrors.ErrMissingClientID
	}
	if session.ClientSecret == "" {
		return apperrors.ErrMissingClientSecret
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return nil
}

// Get retrieves a session by session ID. Expired sessions are removed and
// reported as ErrSessionExpired.
func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, errors.New("sessionID is required")
	}

	r.mu.RLock()
	session, exists := r.sessions[sessionID]
	r.mu.RUnlock()

	if !exists {
		return Session{}, apperrors.ErrSessionNotFound
	}

	if session.Expired(r.now()) {
		r.mu.Lock()
		delete(r.sessions, sessionID)
		r.mu.Unlock()
		return Session{}, apperrors.ErrSessionExpired
	}

	return session, nil
}

// Delete removes a session
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
