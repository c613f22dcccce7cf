package server

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET "+RouteHome+"{$}", ChainMiddleware(s.HomeHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("POST "+RouteAuthorize, ChainMiddleware(s.AuthorizeHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteCallback, ChainMiddleware(s.CallbackHandler(), s.HTMLMiddleWare()...))

	s.RegisterRouteHandler("GET "+RouteAPIToken, ChainMiddleware(s.APITokenHandler(), s.APIMiddleware()...))
}
