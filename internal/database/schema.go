package database

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all tables. Statements are idempotent so the
// server can run them on every startup. The UNIQUE KEY on votes.user_id is
// what guarantees one vote per user: two concurrent inserts for the same
// user cannot both succeed, the second fails with duplicate-key error 1062.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		full_name     VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role          ENUM('voter','admin') NOT NULL DEFAULT 'voter',
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS candidates (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name        VARCHAR(255) NOT NULL,
		party       VARCHAR(255) NOT NULL,
		description TEXT,
		image_url   VARCHAR(512),
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS votes (
		id           BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id      BIGINT UNSIGNED NOT NULL,
		candidate_id BIGINT UNSIGNED NOT NULL,
		cast_at      TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_votes_user (user_id),
		KEY idx_votes_candidate (candidate_id),
		CONSTRAINT fk_votes_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_votes_candidate FOREIGN KEY (candidate_id) REFERENCES candidates (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema executes the DDL statements in order. It returns the first
// error encountered, leaving any already-created tables in place.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
