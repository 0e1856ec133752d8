package progress

import (
	"context"
	"sort"
	"sync"

	"github.com/usherkit/usher/pkg/observability"
)

// MemoryStore is an in-memory progress store. It is safe for concurrent use
// and is the backend of choice for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Get retrieves the record for a tour.
func (s *MemoryStore) Get(ctx context.Context, tourID string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[tourID]
	observability.Store().OnStoreGet("memory", tourID, ok)
	if !ok {
		return nil, nil
	}
	out := rec
	return &out, nil
}

// Set stores a record.
func (s *MemoryStore) Set(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.TourID] = *rec
	observability.Store().OnStoreSet("memory", rec.TourID)
	return nil
}

// Delete removes a tour's record.
func (s *MemoryStore) Delete(ctx context.Context, tourID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, tourID)
	return nil
}

// List returns all records ordered by tour ID.
func (s *MemoryStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		r := rec
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TourID < out[j].TourID })
	return out, nil
}

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
