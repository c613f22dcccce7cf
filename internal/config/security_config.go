package config

import "time"

type SecurityConfig interface {
	GetMaxSessionAge() time.Duration
	GetExchangeTimeout() time.Duration
	GetStateTokenLength() int
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetMaxSessionAge() time.Duration {
	return 30 * time.Minute // Sessions expire after 30 minutes
}

// GetExchangeTimeout bounds the single outbound call to the provider's token
// endpoint. There is no retry, the user restarts the flow on failure.
func (Security) GetExchangeTimeout() time.Duration {
	return 15 * time.Second
}

func (Security) GetStateTokenLength() int {
	return 32 // 32 bytes = 256 bits
}
