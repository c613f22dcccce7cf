package authflow

import (
	"crypto/rand"
	"encoding/base64"
)

// NewStateToken creates a random base64url anti-CSRF token of length random
// bytes. 16 bytes (128 bits) is the floor for an unguessable token; callers
// normally pass 32.
func NewStateToken(length int) string {
	if length < 16 {
		length = 16
	}
	b := make([]byte, length)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
