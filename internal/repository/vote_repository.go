package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/iliyamo/online-voting/internal/model"
)

// VoteRepo provides access to the append-only votes table. There are
// deliberately no update or delete methods: a ballot, once recorded,
// is immutable.
type VoteRepo struct {
    db *sql.DB
}

// NewVoteRepo returns a new VoteRepo bound to the given database.
func NewVoteRepo(db *sql.DB) *VoteRepo { return &VoteRepo{db: db} }

// CandidateResult is one row of the aggregated results query: a
// candidate joined against its vote count. Candidates without votes
// appear with Votes == 0.
type CandidateResult struct {
    ID          uint64 `json:"id"`
    Name        string `json:"name"`
    Party       string `json:"party"`
    Description string `json:"description"`
    Votes       int    `json:"votes"`
}

// Cast appends one vote row for the user. The one-vote-per-user rule is
// enforced entirely by the UNIQUE KEY on votes.user_id: the insert is a
// single atomic statement, so two concurrent casts for the same user
// cannot both succeed no matter how they interleave. A duplicate-key
// failure (1062) becomes ErrAlreadyVoted; a foreign-key failure on the
// candidate column (1452) becomes ErrCandidateNotFound, covering the
// race where a candidate is deleted between the existence check and
// the insert.
func (r *VoteRepo) Cast(ctx context.Context, userID, candidateID uint64) (model.Vote, error) {
    res, err := r.db.ExecContext(ctx,
        "INSERT INTO votes (user_id, candidate_id) VALUES (?,?)",
        userID, candidateID)
    if err != nil {
        msg := strings.ToLower(err.Error())
        if strings.Contains(msg, "1062") {
            return model.Vote{}, ErrAlreadyVoted
        }
        if strings.Contains(msg, "1452") {
            return model.Vote{}, ErrCandidateNotFound
        }
        return model.Vote{}, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return model.Vote{}, err
    }
    // Query back the full row to populate the cast_at default.
    v := model.Vote{}
    err = r.db.QueryRowContext(ctx,
        "SELECT id,user_id,candidate_id,cast_at FROM votes WHERE id=? LIMIT 1",
        uint64(id)).Scan(&v.ID, &v.UserID, &v.CandidateID, &v.CastAt)
    if err != nil {
        return model.Vote{}, err
    }
    return v, nil
}

// CountAll returns the total number of ballots cast.
func (r *VoteRepo) CountAll(ctx context.Context) (int, error) {
    var n int
    err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM votes").Scan(&n)
    return n, err
}

// CountDistinctVoters returns how many distinct users have voted. With
// the unique constraint on user_id this equals CountAll, but turnout is
// defined over voters rather than ballots so the query states the
// intent explicitly.
func (r *VoteRepo) CountDistinctVoters(ctx context.Context) (int, error) {
    var n int
    err := r.db.QueryRowContext(ctx, "SELECT COUNT(DISTINCT user_id) FROM votes").Scan(&n)
    return n, err
}

// ResultsByCandidate aggregates votes per candidate via a LEFT JOIN so
// zero-vote candidates are included. Rows come back ordered by vote
// count descending with candidate id as the deterministic tie-break.
func (r *VoteRepo) ResultsByCandidate(ctx context.Context) ([]CandidateResult, error) {
    rows, err := r.db.QueryContext(ctx, `
        SELECT c.id, c.name, c.party, COALESCE(c.description, ''), COUNT(v.id)
        FROM candidates c
        LEFT JOIN votes v ON v.candidate_id = c.id
        GROUP BY c.id, c.name, c.party, c.description
        ORDER BY COUNT(v.id) DESC, c.id ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]CandidateResult, 0)
    for rows.Next() {
        var cr CandidateResult
        if err := rows.Scan(&cr.ID, &cr.Name, &cr.Party, &cr.Description, &cr.Votes); err != nil {
            return nil, err
        }
        out = append(out, cr)
    }
    return out, rows.Err()
}
