package config

const (
	authorizationURLVar = "PROVIDER_AUTH_URL"
	tokenURLVar         = "PROVIDER_TOKEN_URL"
	redirectURIVar      = "REDIRECT_URI"
	developerPortalVar  = "PROVIDER_DEVELOPER_PORTAL"
	providerNameVar     = "PROVIDER_NAME"
)

type ProviderConfig interface {
	GetProviderName() string
	GetAuthorizationURL() string
	GetTokenURL() string
	GetRedirectURI() string
	GetDeveloperPortalURL() string
}

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetProviderName() string {
	return GetEnv(providerNameVar, "Monzo")
}

func (Provider) GetAuthorizationURL() string {
	return GetEnv(authorizationURLVar, "https://auth.monzo.com/")
}

func (Provider) GetTokenURL() string {
	return GetEnv(tokenURLVar, "https://api.monzo.com/oauth2/token")
}

// GetRedirectURI must match the redirect URL registered with the provider
// exactly, including scheme and port.
func (Provider) GetRedirectURI() string {
	return GetEnv(redirectURIVar, "http://localhost:8080/callback")
}

func (Provider) GetDeveloperPortalURL() string {
	return GetEnv(developerPortalVar, "https://developers.monzo.com/apps")
}
