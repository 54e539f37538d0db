package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/online-voting/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes the health check, which
// probes the database so monitoring can distinguish a running process from
// a working service.
func RegisterRoutes(e *echo.Echo, hh *handler.HealthHandler) {
	// Map the GET request at path "/healthz" to the health probe.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service and its database are up.
	e.GET("/healthz", hh.Check)
}

// RegisterPublic registers the unauthenticated results endpoint.  Aggregate
// counts reveal nothing about individual ballots, so no JWT or role
// middleware applies here.  The optional cache middleware keeps repeated
// dashboard polls cheap; pass a pass-through middleware when Redis is not
// available.
func RegisterPublic(e *echo.Echo, rh *handler.ResultsHandler, cache echo.MiddlewareFunc) {
	// Expose the live tally with per-candidate counts and percentages.
	e.GET("/results", rh.Results, cache)
}
