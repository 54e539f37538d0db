package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-voting/internal/tally"
)

// StatsHandler serves the admin dashboard aggregates. Everything is
// recomputed from the store on each request; nothing is materialized.
type StatsHandler struct {
    Engine *tally.Engine
}

// NewStatsHandler constructs a StatsHandler. The engine must be non-nil.
func NewStatsHandler(engine *tally.Engine) *StatsHandler {
    if engine == nil {
        panic("nil engine passed to NewStatsHandler")
    }
    return &StatsHandler{Engine: engine}
}

// Stats handles GET /admin/stats with the three dashboard counters.
func (h *StatsHandler) Stats(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    stats, err := h.Engine.ComputeStats(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, stats)
}

// VoteDistribution handles GET /admin/vote-distribution. It returns one
// {name, votes} pair per candidate, ordered by vote count descending,
// the shape the admin bar chart consumes.
func (h *StatsHandler) VoteDistribution(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    results, err := h.Engine.ComputeResults(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    type distEntry struct {
        Name  string `json:"name"`
        Votes int    `json:"votes"`
    }
    out := make([]distEntry, 0, len(results.Standings))
    for _, s := range results.Standings {
        out = append(out, distEntry{Name: s.Name, Votes: s.Votes})
    }
    return c.JSON(http.StatusOK, out)
}

// VoterTurnout handles GET /admin/voter-turnout. The response is the
// two-slice shape the pie chart consumes.
func (h *StatsHandler) VoterTurnout(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    turnout, err := h.Engine.ComputeTurnout(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    type slice struct {
        Name  string `json:"name"`
        Value int    `json:"value"`
    }
    return c.JSON(http.StatusOK, []slice{
        {Name: "Voted", Value: turnout.Voted},
        {Name: "Not Voted", Value: turnout.NotVoted},
    })
}
