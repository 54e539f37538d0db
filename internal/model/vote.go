package model

import "time"

// Vote models an entry in the `votes` table.  The table is append-only:
// rows are inserted exactly once and never updated or deleted.  The
// database enforces a UNIQUE constraint on UserID so a voter can never
// hold more than one row regardless of request timing.
//
// Fields:
//  ID          – primary key identifier.
//  UserID      – voter who cast the ballot (unique across the table).
//  CandidateID – candidate the ballot was cast for.
//  CastAt      – timestamp the ballot was recorded.
type Vote struct {
    ID          uint64    // votes.id
    UserID      uint64    // votes.user_id (unique)
    CandidateID uint64    // votes.candidate_id
    CastAt      time.Time // votes.cast_at
}
