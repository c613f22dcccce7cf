package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-oauth-helper/authflow"
	"github.com/jrsteele09/go-oauth-helper/server/credsession"
)

// TokensPageData contains data for rendering the token result page
type TokensPageData struct {
	ProviderName string
	AccessToken  string
	RefreshToken string
	HasRefresh   bool
	ClientID     string
	ClientSecret string
}

// CallbackHandler handles the redirect back from the provider, validates the
// callback parameters and exchanges the authorization code for tokens
// (GET /callback)
func (s *Server) CallbackHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("tokens.html")
	if err != nil {
		panic("Failed to parse tokens template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		// The session must still be alive before any callback parameter is
		// looked at; without it there are no credentials to exchange with.
		sessionID, err := s.credSessionID(r)
		var session credsession.Session
		if err == nil {
			session, err = s.creds.Get(sessionID)
		}
		if err != nil {
			s.renderError(w, http.StatusBadRequest, "Error", "Session expired. Please start over from the home page.")
			return
		}

		params := authflow.CallbackParams{
			Code:  r.URL.Query().Get("code"),
			State: r.URL.Query().Get("state"),
			Error: r.URL.Query().Get("error"),
		}

		result := authflow.ValidateCallback(params, session.State)
		switch result.Outcome {
		case authflow.OutcomeAuthorizationDenied:
			s.renderError(w, http.StatusBadRequest, "Authorization Error", "Error: "+result.ProviderError)
			return
		case authflow.OutcomeStateMismatch:
			log.Warn().Str("session_id", sessionID).Msg("State token mismatch on callback, possible CSRF attempt")
			s.renderError(w, http.StatusBadRequest, "Security Error", "Invalid state token")
			return
		case authflow.OutcomeMissingCode:
			s.renderError(w, http.StatusBadRequest, "Error", "No authorization code received")
			return
		}

		tokens, err := s.exchanger.Exchange(
			r.Context(),
			session.ClientID,
			session.ClientSecret,
			s.config.GetRedirectURI(),
			result.Code,
		)
		if err != nil {
			var exchangeErr *authflow.ExchangeError
			if errors.As(err, &exchangeErr) {
				s.renderError(w, http.StatusBadRequest, "Token Exchange Failed",
					fmt.Sprintf("Status: %d Error: %s", exchangeErr.StatusCode, exchangeErr.Body))
				return
			}
			log.Err(err).Msg("Token exchange transport failure")
			s.renderError(w, http.StatusInternalServerError, "Request Error", "Error: "+err.Error())
			return
		}

		session.Status = credsession.StatusCompleted
		if err := s.creds.Upsert(sessionID, session); err != nil {
			log.Err(err).Msg("Failed to mark session completed")
		}

		data := TokensPageData{
			ProviderName: s.config.GetProviderName(),
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
			HasRefresh:   tokens.RefreshToken != "",
			ClientID:     session.ClientID,
			ClientSecret: session.ClientSecret,
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render tokens template")
		}
	}
}
