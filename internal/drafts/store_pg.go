package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/jobboard-client/internal/wizard"
)

// PGStore persists drafts in PostgreSQL.
//
// Expected table:
//
//	CREATE TABLE application_drafts (
//	    user_id    TEXT NOT NULL,
//	    job_id     TEXT NOT NULL,
//	    content    JSONB NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    PRIMARY KEY (user_id, job_id)
//	);
type PGStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PGStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PGStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Save upserts the draft for (userID, jobID).
func (s *PGStore) Save(ctx context.Context, userID, jobID string, snap wizard.Snapshot) error {
	content, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO application_drafts (user_id, job_id, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, job_id) DO UPDATE SET content = $3, updated_at = NOW()`,
		userID, jobID, content,
	)
	if err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Load fetches the draft for (userID, jobID), or (nil, nil) when absent.
func (s *PGStore) Load(ctx context.Context, userID, jobID string) (*wizard.Snapshot, error) {
	var content []byte
	err := s.pool.QueryRow(ctx,
		`SELECT content FROM application_drafts WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(content, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse stored draft: %w", err)
	}
	return &snap, nil
}

// Delete removes the draft for (userID, jobID).
func (s *PGStore) Delete(ctx context.Context, userID, jobID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM application_drafts WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
