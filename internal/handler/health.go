package handler // declare the package name; contains HTTP handlers

import (
    "context"      // context bounds the probe query
    "database/sql" // database handle for the probe
    "net/http"     // net/http provides status codes and response helpers
    "time"         // timeout duration for the probe

    "github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// HealthHandler exposes the liveness probe. It pings the database so load
// balancers and monitoring systems can tell a running process apart from a
// working service.
type HealthHandler struct {
    DB *sql.DB
}

// NewHealthHandler constructs a HealthHandler bound to the given database.
func NewHealthHandler(db *sql.DB) *HealthHandler { return &HealthHandler{DB: db} }

// Check handles GET /healthz. It runs SELECT NOW() against the store and
// reports the database time on success, or 500 when the store is down.
func (h *HealthHandler) Check(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
    defer cancel()

    var now time.Time
    if err := h.DB.QueryRowContext(ctx, "SELECT NOW()").Scan(&now); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database unreachable"})
    }
    return c.JSON(http.StatusOK, echo.Map{"status": "ok", "time": now})
}
