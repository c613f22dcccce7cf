package config

type Config interface {
	EnvConfig
	ProviderConfig
	SecurityConfig
	CorsConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetBaseURL() string
	GetEnv() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Provider
	Security
	Cors
}

func New() Config {
	return mainConfig{}
}
