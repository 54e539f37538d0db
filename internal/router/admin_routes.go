package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-voting/internal/handler"
	"github.com/iliyamo/online-voting/internal/middleware"
	"github.com/iliyamo/online-voting/internal/model"
)

// RegisterAdmin registers all administrator endpoints under the /admin
// prefix.  The whole group requires a valid access token whose role claim
// is "admin"; RequireRole turns anything else into a 403 before the
// handlers run.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, ah *handler.AdminHandler, sh *handler.StatsHandler, jwtSecret string) {
	// Group every admin route so the middleware applies uniformly.
	g := e.Group("/admin")
	// Validate the bearer token and inject user_id/role into the context.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Only the admin role may proceed.
	g.Use(middleware.RequireRole(model.RoleAdmin))

	// Create another admin account (restricted to the reserved email domain).
	g.POST("/register", a.RegisterAdmin)

	// Candidate management.
	g.POST("/candidates", ah.CreateCandidate)
	g.PUT("/candidates/:id", ah.UpdateCandidate)
	g.DELETE("/candidates/:id", ah.DeleteCandidate)

	// Dashboard aggregates, recomputed from the store on each request.
	g.GET("/stats", sh.Stats)
	g.GET("/vote-distribution", sh.VoteDistribution)
	g.GET("/voter-turnout", sh.VoterTurnout)
}
