package authflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-oauth-helper/authflow"
)

func TestValidateCallback(t *testing.T) {
	const expectedState = "expected-state"

	t.Run("valid callback carries the code forward", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code:  "good123",
			State: expectedState,
		}, expectedState)

		require.Equal(t, authflow.OutcomeValid, result.Outcome)
		require.Equal(t, "good123", result.Code)
	})

	t.Run("provider error wins over everything", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code:  "good123",
			State: "wrong-state",
			Error: "access_denied",
		}, expectedState)

		require.Equal(t, authflow.OutcomeAuthorizationDenied, result.Outcome)
		require.Equal(t, "access_denied", result.ProviderError)
		require.Empty(t, result.Code)
	})

	t.Run("provider error wins even when state is valid", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code:  "good123",
			State: expectedState,
			Error: "access_denied",
		}, expectedState)

		require.Equal(t, authflow.OutcomeAuthorizationDenied, result.Outcome)
	})

	t.Run("wrong state is rejected before code is looked at", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code:  "good123",
			State: "wrong-state",
		}, expectedState)

		require.Equal(t, authflow.OutcomeStateMismatch, result.Outcome)
		require.Empty(t, result.Code)
	})

	t.Run("missing state is a mismatch", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code: "good123",
		}, expectedState)

		require.Equal(t, authflow.OutcomeStateMismatch, result.Outcome)
	})

	t.Run("empty expected state never validates", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			Code: "good123",
		}, "")

		require.Equal(t, authflow.OutcomeStateMismatch, result.Outcome)
	})

	t.Run("missing code with valid state", func(t *testing.T) {
		result := authflow.ValidateCallback(authflow.CallbackParams{
			State: expectedState,
		}, expectedState)

		require.Equal(t, authflow.OutcomeMissingCode, result.Outcome)
	})
}
