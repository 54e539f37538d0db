package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/online-voting/internal/queue"
    "github.com/iliyamo/online-voting/internal/repository"
    queue_publisher "github.com/iliyamo/online-voting/internal/service"
)

// VoteHandler records ballots. The one-vote-per-user guarantee is not
// implemented here: the handler only validates input and translates the
// storage outcome, the uniqueness itself is the database constraint on
// votes.user_id. There is deliberately no check-then-insert sequence.
type VoteHandler struct {
    Candidates *repository.CandidateRepo
    Votes      *repository.VoteRepo
}

// NewVoteHandler constructs a VoteHandler. All dependencies must be non-nil.
func NewVoteHandler(candidates *repository.CandidateRepo, votes *repository.VoteRepo) *VoteHandler {
    if candidates == nil || votes == nil {
        panic("nil repository passed to NewVoteHandler")
    }
    return &VoteHandler{Candidates: candidates, Votes: votes}
}

type castVoteReq struct {
    CandidateID uint64 `json:"candidate_id"`
}

// Cast handles POST /vote. The voter identity comes from the verified
// token, never from the request body. A second ballot from the same
// user fails with 409 regardless of how the two requests interleave.
func (h *VoteHandler) Cast(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }

    var req castVoteReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.CandidateID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "candidate_id is required"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    // Reject ballots for unknown candidates up front. The foreign key on
    // votes.candidate_id still backstops the race where the candidate is
    // deleted between this check and the insert.
    candidate, err := h.Candidates.GetByID(ctx, req.CandidateID)
    if err != nil {
        if err == repository.ErrCandidateNotFound {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "candidate does not exist"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    vote, err := h.Votes.Cast(ctx, userID, req.CandidateID)
    if err != nil {
        switch err {
        case repository.ErrAlreadyVoted:
            return c.JSON(http.StatusConflict, echo.Map{"error": "already voted"})
        case repository.ErrCandidateNotFound:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "candidate does not exist"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cast vote failed"})
        }
    }

    // Publish the audit event best effort; a broker outage never turns a
    // recorded ballot into a failed request.
    go func(ev queue.VoteCastEvent) {
        pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer pubCancel()
        _ = queue_publisher.PublishVoteCast(pubCtx, ev)
    }(queue.VoteCastEvent{
        VoteID:        vote.ID,
        UserID:        vote.UserID,
        CandidateID:   vote.CandidateID,
        CandidateName: candidate.Name,
        CastAt:        vote.CastAt.UTC().Format(time.RFC3339),
    })

    return c.JSON(http.StatusCreated, echo.Map{"message": "vote cast successfully"})
}
