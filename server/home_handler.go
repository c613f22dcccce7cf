package server

import (
	"net/http"
)

// HomePageData contains data for rendering the instructions page
type HomePageData struct {
	AppName            string
	ProviderName       string
	DeveloperPortalURL string
	RedirectURI        string
}

// HomeHandler renders the home page with setup instructions and the client
// credentials form (GET /)
func (s *Server) HomeHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := HomePageData{
			AppName:            s.config.GetAppName(),
			ProviderName:       s.config.GetProviderName(),
			DeveloperPortalURL: s.config.GetDeveloperPortalURL(),
			RedirectURI:        s.config.GetRedirectURI(),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}
}
