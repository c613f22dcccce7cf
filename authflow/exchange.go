package authflow

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// TokenResponse is the slice of the provider's token endpoint response that
// the helper surfaces to the user.
type TokenResponse struct {
	AccessToken  string
	RefreshToken string // may be empty for non-confidential clients
}

// ExchangeError is a non-200 answer from the provider's token endpoint. The
// status code and raw body are kept verbatim for display.
type ExchangeError struct {
	StatusCode int
	Body       []byte
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("token exchange failed: status=%d body=%s", e.StatusCode, string(e.Body))
}

// TransportError is a network-level failure talking to the provider: timeout,
// connection error or a malformed response body.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("token endpoint request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Exchanger performs the authorization-code-for-token exchange against a
// single provider token endpoint. One synchronous attempt per call, no retry
// or backoff; the user restarts the flow on failure.
type Exchanger struct {
	tokenURL string
	client   *http.Client
	timeout  time.Duration
}

func NewExchanger(tokenURL string, timeout time.Duration) *Exchanger {
	return &Exchanger{
		tokenURL: tokenURL,
		client:   &http.Client{Timeout: timeout},
		timeout:  timeout,
	}
}

// Exchange POSTs grant_type=authorization_code with the client credentials,
// redirect URI and authorization code as a form-encoded body, bounded by the
// configured timeout.
func (e *Exchanger) Exchange(ctx context.Context, clientID, clientSecret, redirectURI, code string) (*TokenResponse, error) {
	cfg := oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			TokenURL:  e.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams, // credentials go in the form body, not basic auth
		},
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, e.client)

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return nil, &ExchangeError{
				StatusCode: retrieveErr.Response.StatusCode,
				Body:       retrieveErr.Body,
			}
		}
		return nil, &TransportError{Err: err}
	}

	return &TokenResponse{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}
