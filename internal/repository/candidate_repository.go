package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/iliyamo/online-voting/internal/model"
)

// CandidateRepo provides CRUD operations for ballot candidates. Writes
// are reserved for administrators; the handler layer enforces that via
// role middleware, the repository itself is role-agnostic.
type CandidateRepo struct {
    db *sql.DB
}

// NewCandidateRepo returns a new CandidateRepo bound to the given database.
func NewCandidateRepo(db *sql.DB) *CandidateRepo { return &CandidateRepo{db: db} }

// DB exposes the underlying handle for callers that need to coordinate
// work across repositories.
func (r *CandidateRepo) DB() *sql.DB { return r.db }

// Create inserts a new candidate and returns the stored row, including
// the generated id and timestamps populated by the database.
func (r *CandidateRepo) Create(ctx context.Context, name, party, description string, imageURL *string) (model.Candidate, error) {
    res, err := r.db.ExecContext(ctx,
        "INSERT INTO candidates (name, party, description, image_url) VALUES (?,?,?,?)",
        name, party, description, imageURL)
    if err != nil {
        return model.Candidate{}, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return model.Candidate{}, err
    }
    return r.GetByID(ctx, uint64(id))
}

// GetByID fetches a single candidate. ErrCandidateNotFound is returned
// when no row matches.
func (r *CandidateRepo) GetByID(ctx context.Context, id uint64) (model.Candidate, error) {
    var (
        c        model.Candidate
        desc     sql.NullString
        imageURL sql.NullString
    )
    err := r.db.QueryRowContext(ctx,
        "SELECT id,name,party,description,image_url,created_at,updated_at FROM candidates WHERE id=? LIMIT 1",
        id).Scan(&c.ID, &c.Name, &c.Party, &desc, &imageURL, &c.CreatedAt, &c.UpdatedAt)
    if err == sql.ErrNoRows {
        return model.Candidate{}, ErrCandidateNotFound
    }
    if err != nil {
        return model.Candidate{}, err
    }
    c.Description = desc.String
    if imageURL.Valid {
        u := imageURL.String
        c.ImageURL = &u
    }
    return c, nil
}

// List returns all candidates ordered by id, the order they were added.
func (r *CandidateRepo) List(ctx context.Context) ([]model.Candidate, error) {
    rows, err := r.db.QueryContext(ctx,
        "SELECT id,name,party,description,image_url,created_at,updated_at FROM candidates ORDER BY id")
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]model.Candidate, 0)
    for rows.Next() {
        var (
            c        model.Candidate
            desc     sql.NullString
            imageURL sql.NullString
        )
        if err := rows.Scan(&c.ID, &c.Name, &c.Party, &desc, &imageURL, &c.CreatedAt, &c.UpdatedAt); err != nil {
            return nil, err
        }
        c.Description = desc.String
        if imageURL.Valid {
            u := imageURL.String
            c.ImageURL = &u
        }
        out = append(out, c)
    }
    return out, rows.Err()
}

// Update rewrites a candidate's fields and returns the updated row.
// ErrCandidateNotFound is returned when the id does not exist.
func (r *CandidateRepo) Update(ctx context.Context, id uint64, name, party, description string, imageURL *string) (model.Candidate, error) {
    _, err := r.db.ExecContext(ctx,
        "UPDATE candidates SET name=?, party=?, description=?, image_url=? WHERE id=?",
        name, party, description, imageURL, id)
    if err != nil {
        return model.Candidate{}, err
    }
    // RowsAffected is 0 both for a missing row and for a no-op update,
    // so existence is confirmed by reading the row back instead.
    return r.GetByID(ctx, id)
}

// Delete removes a candidate. Deletion is restricted when ballots
// reference the candidate: the foreign key on votes.candidate_id makes
// MySQL reject the delete with error 1451, which is surfaced as
// ErrCandidateHasVotes. A missing id yields ErrCandidateNotFound.
func (r *CandidateRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.db.ExecContext(ctx, "DELETE FROM candidates WHERE id=?", id)
    if err != nil {
        if strings.Contains(strings.ToLower(err.Error()), "1451") {
            return ErrCandidateHasVotes
        }
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrCandidateNotFound
    }
    return nil
}

// Count returns the total number of candidates, used by the admin
// stats endpoint.
func (r *CandidateRepo) Count(ctx context.Context) (int, error) {
    var n int
    err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM candidates").Scan(&n)
    return n, err
}
