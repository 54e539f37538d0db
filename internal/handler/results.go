package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-voting/internal/tally"
)

// ResultsHandler serves the public results page. No authentication is
// required: aggregate counts reveal nothing about individual ballots.
type ResultsHandler struct {
    Engine *tally.Engine
}

// NewResultsHandler constructs a ResultsHandler. The engine must be non-nil.
func NewResultsHandler(engine *tally.Engine) *ResultsHandler {
    if engine == nil {
        panic("nil engine passed to NewResultsHandler")
    }
    return &ResultsHandler{Engine: engine}
}

// Results handles GET /results. Candidates are ordered by vote count
// descending (candidate id breaks ties) and each carries its percentage
// of the total, rounded to one decimal.
func (h *ResultsHandler) Results(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    results, err := h.Engine.ComputeResults(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, results)
}
