package authflow_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oauth-helper/authflow"
)

func TestNewStateToken(t *testing.T) {
	t.Run("decodes to requested byte length", func(t *testing.T) {
		token := authflow.NewStateToken(32)
		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.Len(t, raw, 32)
	})

	t.Run("enforces 128 bit minimum", func(t *testing.T) {
		token := authflow.NewStateToken(4)
		raw, err := base64.RawURLEncoding.DecodeString(token)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(raw), 16)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			token := authflow.NewStateToken(32)
			_, dup := seen[token]
			require.False(t, dup, "duplicate state token generated")
			seen[token] = struct{}{}
		}
	})

	t.Run("url safe", func(t *testing.T) {
		token := authflow.NewStateToken(32)
		require.NotContains(t, token, "+")
		require.NotContains(t, token, "/")
		require.NotContains(t, token, "=")
	})
}
