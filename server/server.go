package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-oauth-helper/authflow"
	"github.com/jrsteele09/go-oauth-helper/internal/config"
	"github.com/jrsteele09/go-oauth-helper/server/credsession"
)

type Server struct {
	env       string // Environment (e.g., "development", "production")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	creds     credsession.Repo
	exchanger *authflow.Exchanger
}

func New(config config.Config, credsRepo credsession.Repo) (*Server, error) {
	if credsRepo == nil {
		return nil, errors.New("[Server New] credential session repo is required")
	}

	s := &Server{
		mux:       http.NewServeMux(),
		config:    config,
		creds:     credsRepo,
		exchanger: authflow.NewExchanger(config.GetTokenURL(), config.GetExchangeTimeout()),
	}
	s.env = config.GetEnv()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
