package model

import "time"

// Candidate represents a row in the `candidates` table.  Candidates are
// created and maintained exclusively by administrators; voters only ever
// read them.
//
// Fields:
//  ID          – primary key identifier of the candidate.
//  Name        – candidate display name (required).
//  Party       – political party or affiliation (required).
//  Description – free-form text shown on the ballot (optional).
//  ImageURL    – optional portrait URL (nullable in the database).
//  CreatedAt   – timestamp of creation.
//  UpdatedAt   – timestamp of last update.
type Candidate struct {
    ID          uint64    // candidates.id
    Name        string    // candidates.name
    Party       string    // candidates.party
    Description string    // candidates.description
    ImageURL    *string   // candidates.image_url (nullable)
    CreatedAt   time.Time // candidates.created_at
    UpdatedAt   time.Time // candidates.updated_at
}
