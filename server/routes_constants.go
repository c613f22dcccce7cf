package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Flow Routes
	RouteHome      = "/"
	RouteAuthorize = "/authorize"
	RouteCallback  = "/callback"

	// API Routes
	RouteAPIToken = "/api/token"
)
