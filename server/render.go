package server

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeJSON = "application/json; charset=utf-8"
)

// ErrorPageData contains data for rendering the error page
type ErrorPageData struct {
	Title   string
	Message string
}

// renderError writes an HTML error page with the given status. Every flow
// error is terminal for the request; the page points the user back to the
// home page to start over.
func (s *Server) renderError(w http.ResponseWriter, status int, title, message string) {
	tmpl, err := ParseTemplate("error.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse error template")
		http.Error(w, title+": "+message, status)
		return
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	if err := tmpl.Execute(w, ErrorPageData{Title: title, Message: message}); err != nil {
		log.Err(err).Msg("Failed to render error template")
	}
}
