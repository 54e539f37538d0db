// Package tally derives aggregate election results from the votes table.
// Nothing here is cached or materialized: every call recomputes from the
// current database state, so results are always consistent with the
// ballots actually recorded. All computation on fetched rows is pure so
// it can be exercised without a database.
package tally

import (
	"context"
	"math"

	"github.com/iliyamo/online-voting/internal/repository"
)

// CandidateStanding is one entry of the computed results: a candidate,
// its vote count and its share of the total as a percentage rounded to
// one decimal place.
type CandidateStanding struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Party       string  `json:"party"`
	Description string  `json:"description"`
	Votes       int     `json:"votes"`
	Percentage  float64 `json:"percentage"`
}

// Results bundles the per-candidate standings with the overall ballot
// count. The invariant sum(standings[i].Votes) == TotalVotes holds
// because both come from the same table.
type Results struct {
	Standings  []CandidateStanding `json:"results"`
	TotalVotes int                 `json:"totalVotes"`
}

// Turnout reports how many registered voters have cast a ballot and how
// many have not.
type Turnout struct {
	Voted    int `json:"voted"`
	NotVoted int `json:"notVoted"`
}

// Stats is the summary shown on the admin dashboard.
type Stats struct {
	TotalVotes       int `json:"totalVotes"`
	RegisteredVoters int `json:"registeredVoters"`
	ActiveCandidates int `json:"activeCandidates"`
}

// Engine computes results on demand from the vote, user and candidate
// repositories. It holds no state of its own and is safe for concurrent
// use.
type Engine struct {
	Votes      *repository.VoteRepo
	Users      *repository.UserRepo
	Candidates *repository.CandidateRepo
}

// NewEngine constructs an Engine. All dependencies must be non-nil.
func NewEngine(votes *repository.VoteRepo, users *repository.UserRepo, candidates *repository.CandidateRepo) *Engine {
	if votes == nil || users == nil || candidates == nil {
		panic("nil repository passed to NewEngine")
	}
	return &Engine{Votes: votes, Users: users, Candidates: candidates}
}

// ComputeResults fetches the per-candidate counts (zero-vote candidates
// included, ordered by count descending with candidate id as tie-break)
// and attaches percentages.
func (e *Engine) ComputeResults(ctx context.Context) (Results, error) {
	rows, err := e.Votes.ResultsByCandidate(ctx)
	if err != nil {
		return Results{}, err
	}
	total, err := e.Votes.CountAll(ctx)
	if err != nil {
		return Results{}, err
	}
	return BuildResults(rows, total), nil
}

// BuildResults converts aggregated rows into standings with percentages.
// When total is zero every percentage is zero; there is no division by
// zero. The input order is preserved.
func BuildResults(rows []repository.CandidateResult, total int) Results {
	standings := make([]CandidateStanding, 0, len(rows))
	for _, row := range rows {
		standings = append(standings, CandidateStanding{
			ID:          row.ID,
			Name:        row.Name,
			Party:       row.Party,
			Description: row.Description,
			Votes:       row.Votes,
			Percentage:  Percentage(row.Votes, total),
		})
	}
	return Results{Standings: standings, TotalVotes: total}
}

// Percentage returns votes/total*100 rounded to one decimal place, or 0
// when total is zero.
func Percentage(votes, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(votes)/float64(total)*1000) / 10
}

// ComputeTurnout compares distinct voters among the ballots against the
// number of registered users with the voter role.
func (e *Engine) ComputeTurnout(ctx context.Context) (Turnout, error) {
	voted, err := e.Votes.CountDistinctVoters(ctx)
	if err != nil {
		return Turnout{}, err
	}
	registered, err := e.Users.CountVoters(ctx)
	if err != nil {
		return Turnout{}, err
	}
	notVoted := registered - voted
	if notVoted < 0 {
		// Admin ballots are counted in voted but not in registered.
		notVoted = 0
	}
	return Turnout{Voted: voted, NotVoted: notVoted}, nil
}

// ComputeStats gathers the three dashboard counters.
func (e *Engine) ComputeStats(ctx context.Context) (Stats, error) {
	votes, err := e.Votes.CountAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	voters, err := e.Users.CountVoters(ctx)
	if err != nil {
		return Stats{}, err
	}
	candidates, err := e.Candidates.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalVotes: votes, RegisteredVoters: voters, ActiveCandidates: candidates}, nil
}
