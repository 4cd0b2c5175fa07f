// Package drafts persists in-progress application wizard state so a candidate
// can stop mid-flow and resume later. Drafts are keyed by (user id, job id).
package drafts

import (
	"context"
	"sync"

	"github.com/jonathan/jobboard-client/internal/wizard"
)

// Store is the draft persistence interface. Load returns (nil, nil) when no
// draft exists for the key.
type Store interface {
	Save(ctx context.Context, userID, jobID string, snap wizard.Snapshot) error
	Load(ctx context.Context, userID, jobID string) (*wizard.Snapshot, error)
	Delete(ctx context.Context, userID, jobID string) error
}

type draftKey struct {
	userID string
	jobID  string
}

// MemStore is an in-memory draft store for tests and DB-less runs.
type MemStore struct {
	mu     sync.RWMutex
	drafts map[draftKey]wizard.Snapshot
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{drafts: map[draftKey]wizard.Snapshot{}}
}

// Save stores or replaces the draft for (userID, jobID).
func (s *MemStore) Save(_ context.Context, userID, jobID string, snap wizard.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[draftKey{userID, jobID}] = snap
	return nil
}

// Load fetches the draft for (userID, jobID), or (nil, nil) when absent.
func (s *MemStore) Load(_ context.Context, userID, jobID string) (*wizard.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.drafts[draftKey{userID, jobID}]
	if !ok {
		return nil, nil
	}
	return &snap, nil
}

// Delete removes the draft for (userID, jobID). Deleting a missing draft is
// not an error.
func (s *MemStore) Delete(_ context.Context, userID, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, draftKey{userID, jobID})
	return nil
}
