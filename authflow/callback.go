package authflow

// CallbackParams are the query parameters the provider sends back to the
// redirect URI. Any of them may be absent.
type CallbackParams struct {
	Code  string
	State string
	Error string
}

// Outcome is the terminal result of validating one callback request.
type Outcome string

const (
	// OutcomeAuthorizationDenied means the provider reported an error, e.g.
	// the user declined consent. The provider's error string is surfaced.
	OutcomeAuthorizationDenied Outcome = "authorization_denied"

	// OutcomeStateMismatch means the state parameter is missing or does not
	// match the token issued for this flow. Treated as a potential CSRF
	// attempt, the authorization code must never be used.
	OutcomeStateMismatch Outcome = "state_mismatch"

	// OutcomeMissingCode means state checked out but no authorization code
	// was supplied.
	OutcomeMissingCode Outcome = "missing_code"

	// OutcomeValid means the callback passed all checks and Code can be
	// exchanged for tokens.
	OutcomeValid Outcome = "valid"
)

// ValidationResult carries the outcome plus whichever value the outcome makes
// meaningful: the authorization code for OutcomeValid, the provider's error
// string for OutcomeAuthorizationDenied.
type ValidationResult struct {
	Outcome       Outcome
	Code          string
	ProviderError string
}

// ValidateCallback runs the callback checks in their required order: the
// provider's error report wins over everything, state is verified before the
// code is ever looked at, and only then is code presence enforced.
func ValidateCallback(params CallbackParams, expectedState string) ValidationResult {
	if params.Error != "" {
		return ValidationResult{Outcome: OutcomeAuthorizationDenied, ProviderError: params.Error}
	}

	if expectedState == "" || params.State != expectedState {
		return ValidationResult{Outcome: OutcomeStateMismatch}
	}

	if params.Code == "" {
		return ValidationResult{Outcome: OutcomeMissingCode}
	}

	return ValidationResult{Outcome: OutcomeValid, Code: params.Code}
}
