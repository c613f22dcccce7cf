package credsession

import "time"

// Status tracks where a browser session is in the authorization flow.
type Status string

const (
	// StatusAwaitingCallback means credentials are stored and the user has
	// been sent to the provider's consent page.
	StatusAwaitingCallback Status = "awaiting_callback"

	// StatusCompleted means the authorization code was exchanged for tokens.
	StatusCompleted Status = "completed"
)

// Session holds the client credentials a user submitted together with the
// state token minted for their flow. Credentials live only as long as the
// session and are never written anywhere else.
type Session struct {
	ClientID     string
	ClientSecret string
	State        string
	Status       Status
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

type Repo interface {
	Upsert(sessionID string, session Session) error
	Get(sessionID string) (Session, error)
	Delete(sessionID string) error
}
