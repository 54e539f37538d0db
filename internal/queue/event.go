// Package queue defines message payloads exchanged over the message broker.
package queue

// VoteCastEvent is published when a ballot is successfully recorded.
// It contains enough information for downstream consumers to audit-log
// or trigger analytics without querying the primary database. The voter
// is identified by id only; no personal data crosses the broker.
type VoteCastEvent struct {
	VoteID        uint64 `json:"vote_id"`
	UserID        uint64 `json:"user_id"`
	CandidateID   uint64 `json:"candidate_id"`
	CandidateName string `json:"candidate_name"`
	CastAt        string `json:"cast_at"`
}
