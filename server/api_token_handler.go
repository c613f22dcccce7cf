package server

import (
	"encoding/json"
	"net/http"

	"github.com/jrsteele09/go-oauth-helper/authflow"
	"github.com/jrsteele09/go-oauth-helper/server/credsession"
)

// APITokenHandler exposes the flow parameters for programmatic access
// (GET /api/token). The auth_url and state_token are stable for the lifetime
// of the session.
func (s *Server) APITokenHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeJSON)

		sessionID, err := s.credSessionID(r)
		var session credsession.Session
		if err == nil {
			session, err = s.creds.Get(sessionID)
		}
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "No client credentials in session",
			})
			return
		}

		authURL := authflow.AuthorizeURL(
			s.config.GetAuthorizationURL(),
			session.ClientID,
			s.config.GetRedirectURI(),
			session.State,
		)

		_ = json.NewEncoder(w).Encode(map[string]string{
			"auth_url":     authURL,
			"redirect_uri": s.config.GetRedirectURI(),
			"state_token":  session.State,
		})
	}
}
