package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oauth-helper/authflow"
	"github.com/jrsteele09/go-oauth-helper/server/credsession"
)

// RedirectPageData contains data for rendering the provider redirect page
type RedirectPageData struct {
	ProviderName string
	AuthURL      string
}

// AuthorizeHandler processes the credentials form submission, stores the
// credentials against the browser session and sends the user to the
// provider's consent page (POST /authorize)
func (s *Server) AuthorizeHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("redirect.html")
	if err != nil {
		panic("Failed to parse redirect template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			s.renderError(w, http.StatusBadRequest, "Error", "Invalid form data")
			return
		}

		clientID := strings.TrimSpace(r.FormValue("client_id"))
		clientSecret := strings.TrimSpace(r.FormValue("client_secret"))
		if clientID == "" || clientSecret == "" {
			s.renderError(w, http.StatusBadRequest, "Error", "Both Client ID and Client Secret are required")
			return
		}

		// A fresh state token per submission, scoped to this session. The
		// callback only accepts a state minted for the session that presents it.
		now := time.Now()
		sessionID := uuid.NewString()
		session := credsession.Session{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			State:        authflow.NewStateToken(s.config.GetStateTokenLength()),
			Status:       credsession.StatusAwaitingCallback,
			CreatedAt:    now,
			ExpiresAt:    now.Add(s.config.GetMaxSessionAge()),
		}

		if err := s.creds.Upsert(sessionID, session); err != nil {
			log.Err(err).Msg("Failed to store session credentials")
			s.renderError(w, http.StatusInternalServerError, "Error", "Failed to store credentials for this session")
			return
		}

		s.SetCredSessionCookie(w, r, sessionID)

		authURL := authflow.AuthorizeURL(
			s.config.GetAuthorizationURL(),
			clientID,
			s.config.GetRedirectURI(),
			session.State,
		)

		data := RedirectPageData{
			ProviderName: s.config.GetProviderName(),
			AuthURL:      authURL,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render redirect template")
		}
	}
}
