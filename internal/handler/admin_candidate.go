package handler

import (
    "context"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-voting/internal/repository"
)

// AdminHandler bundles the administrator-only operations: candidate
// management and the dashboard aggregates. Role enforcement happens in
// the router via RequireRole("admin"); handlers assume it already ran.
type AdminHandler struct {
    Candidates *repository.CandidateRepo
}

// NewAdminHandler constructs an AdminHandler. The repository must be non-nil.
func NewAdminHandler(candidates *repository.CandidateRepo) *AdminHandler {
    if candidates == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{Candidates: candidates}
}

type candidateReq struct {
    Name        string  `json:"name"`
    Party       string  `json:"party"`
    Description string  `json:"description"`
    ImageURL    *string `json:"image_url"`
}

// CreateCandidate handles POST /admin/candidates. Name and party are
// required, description and image are optional.
func (h *AdminHandler) CreateCandidate(c echo.Context) error {
    var req candidateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Party = strings.TrimSpace(req.Party)
    if req.Name == "" || req.Party == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and party are required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    created, err := h.Candidates.Create(ctx, req.Name, req.Party, req.Description, req.ImageURL)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create candidate failed"})
    }

    return c.JSON(http.StatusCreated, echo.Map{
        "message":   "candidate added successfully",
        "candidate": toCandidateResp(created),
    })
}

// UpdateCandidate handles PUT /admin/candidates/:id.
func (h *AdminHandler) UpdateCandidate(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid candidate id"})
    }

    var req candidateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    req.Party = strings.TrimSpace(req.Party)
    if req.Name == "" || req.Party == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and party are required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    updated, err := h.Candidates.Update(ctx, id, req.Name, req.Party, req.Description, req.ImageURL)
    if err != nil {
        if err == repository.ErrCandidateNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "candidate not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update candidate failed"})
    }

    return c.JSON(http.StatusOK, echo.Map{
        "message":   "candidate updated successfully",
        "candidate": toCandidateResp(updated),
    })
}

// DeleteCandidate handles DELETE /admin/candidates/:id. Deleting a
// candidate that ballots reference is rejected with 409; votes are
// immutable, so removing their candidate would orphan them.
func (h *AdminHandler) DeleteCandidate(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid candidate id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Candidates.Delete(ctx, id); err != nil {
        switch err {
        case repository.ErrCandidateNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "candidate not found"})
        case repository.ErrCandidateHasVotes:
            return c.JSON(http.StatusConflict, echo.Map{"error": "candidate has votes and cannot be deleted"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete candidate failed"})
        }
    }

    return c.JSON(http.StatusOK, echo.Map{"message": "candidate deleted successfully"})
}
