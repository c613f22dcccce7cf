package server

import (
	"net/http"

	apperrors "github.com/jrsteele09/go-oauth-helper/internal/errors"
)

const (
	// credSessionCookieName is the name of the cookie that ties a browser to
	// its stored client credentials during the authorization flow
	credSessionCookieName = "auth_session_id"
)

func (s *Server) SetCredSessionCookie(w http.ResponseWriter, r *http.Request, sessionID string) {
	isSecure := getScheme(r) == "https"

	http.SetCookie(w, &http.Cookie{
		Name:     credSessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.config.GetMaxSessionAge().Seconds()),
	})
}

// credSessionID returns the session identifier for the requesting browser, or
// ErrSessionNotFound when the cookie was never set or has gone away.
func (s *Server) credSessionID(r *http.Request) (string, error) {
	cookie, err := r.Cookie(credSessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", apperrors.ErrSessionNotFound
	}
	return cookie.Value, nil
}
