package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-voting/internal/model"
    "github.com/iliyamo/online-voting/internal/repository"
)

// CandidateHandler serves the read-only candidate listing available to
// any authenticated caller. Write operations live on AdminHandler.
type CandidateHandler struct {
    Candidates *repository.CandidateRepo
}

// NewCandidateHandler constructs a CandidateHandler. The repository must
// be non-nil.
func NewCandidateHandler(candidates *repository.CandidateRepo) *CandidateHandler {
    if candidates == nil {
        panic("nil repository passed to NewCandidateHandler")
    }
    return &CandidateHandler{Candidates: candidates}
}

// candidateResp is the candidate shape returned to clients.
type candidateResp struct {
    ID          uint64  `json:"id"`
    Name        string  `json:"name"`
    Party       string  `json:"party"`
    Description string  `json:"description"`
    ImageURL    *string `json:"image_url,omitempty"`
}

func toCandidateResp(c model.Candidate) candidateResp {
    return candidateResp{
        ID:          c.ID,
        Name:        c.Name,
        Party:       c.Party,
        Description: c.Description,
        ImageURL:    c.ImageURL,
    }
}

// List handles GET /candidates. Candidates come back in insertion order
// so the ballot is stable between requests.
func (h *CandidateHandler) List(c echo.Context) error {
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Candidates.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    out := make([]candidateResp, 0, len(items))
    for _, item := range items {
        out = append(out, toCandidateResp(item))
    }
    return c.JSON(http.StatusOK, out)
}
