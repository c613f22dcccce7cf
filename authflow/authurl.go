package authflow

import (
	"golang.org/x/oauth2"
)

// AuthorizeURL builds the provider authorization URL carrying client_id,
// redirect_uri, response_type=code and state, all percent-encoded.
// Deterministic for the same inputs.
func AuthorizeURL(authURL, clientID, redirectURI, state string) string {
	cfg := oauth2.Config{
		ClientID:    clientID,
		RedirectURL: redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL: authURL,
		},
	}
	return cfg.AuthCodeURL(state)
}
