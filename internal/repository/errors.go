// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrAlreadyVoted indicates that the votes table already
// holds a row for the user, while ErrCandidateHasVotes signals that
// a candidate cannot be deleted because ballots reference it.
package repository

import "errors"

// ErrCandidateNotFound is returned when an operation targets a
// candidate id that does not exist. Handlers should translate this
// into an HTTP 404 response (or 400 when the id came from a vote
// request body).
var ErrCandidateNotFound = errors.New("candidate not found")

// ErrAlreadyVoted is returned when inserting a vote violates the
// unique constraint on votes.user_id, meaning the user has already
// cast a ballot. Handlers should translate this into an HTTP 409
// response.
var ErrAlreadyVoted = errors.New("already voted")

// ErrCandidateHasVotes is returned when a candidate delete is
// rejected because ballots still reference the candidate. Handlers
// should translate this into an HTTP 409 response.
var ErrCandidateHasVotes = errors.New("candidate has votes")
