package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/online-voting/internal/handler"
	"github.com/iliyamo/online-voting/internal/middleware"
	"github.com/iliyamo/online-voting/internal/model"
)

// RegisterAuth registers the credential endpoints.  Neither requires an
// existing session.  Both sit behind the rate limiter so password
// guessing and registration floods are throttled per IP.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rate echo.MiddlewareFunc) {
	// Register a POST endpoint to create a voter account.
	e.POST("/register", a.Register, rate)
	// Register a POST endpoint to exchange credentials for a bearer token.
	e.POST("/login", a.Login, rate)
}

// RegisterVoter registers the endpoints available to any authenticated
// user.  All handlers on this group execute the JWTAuth middleware before
// being invoked, so they can read the verified user_id and role from the
// request context.  Both voters and admins may browse candidates and view
// their profile; casting additionally passes through the rate limiter.
func RegisterVoter(e *echo.Echo, a *handler.AuthHandler, ch *handler.CandidateHandler, vh *handler.VoteHandler, jwtSecret string, rate echo.MiddlewareFunc) {
	// Create a group for routes that require a valid access token.
	g := e.Group("")
	// Apply the JWTAuth middleware to the protected group using the provided secret.
	g.Use(middleware.JWTAuth(jwtSecret))
	// Reject tokens that carry an unknown role.
	g.Use(middleware.RequireRole(model.RoleVoter, model.RoleAdmin))
	// Return the authenticated user's record.
	g.GET("/profile", a.Profile)
	// List the candidates on the ballot.
	g.GET("/candidates", ch.List)
	// Cast a ballot.  The storage-level unique constraint makes this safe
	// against concurrent duplicate submissions.
	g.POST("/vote", vh.Cast, rate)
}
