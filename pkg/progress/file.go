package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/usherkit/usher/pkg/errors"
	"github.com/usherkit/usher/pkg/observability"
)

// FileStore is a file-based progress store for CLI applications. Each tour's
// record is a JSON file named after the tour ID.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based progress store.
// If baseDir is empty, defaults to ~/.config/usher/progress/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "usher", "progress")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create progress dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(tourID string) string {
	return filepath.Join(s.baseDir, tourID+".json")
}

// Get retrieves the record for a tour.
func (s *FileStore) Get(ctx context.Context, tourID string) (*Record, error) {
	if err := errors.ValidateTourID(tourID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(tourID))
	if err != nil {
		if os.IsNotExist(err) {
			observability.Store().OnStoreGet("file", tourID, false)
			return nil, nil
		}
		observability.Store().OnStoreError("file", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "read progress for %s", tourID)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		observability.Store().OnStoreError("file", "get", err)
		return nil, errors.Wrap(errors.ErrCodeStore, err, "parse progress for %s", tourID)
	}
	observability.Store().OnStoreGet("file", tourID, true)
	return &rec, nil
}

// Set stores a record.
func (s *FileStore) Set(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "marshal progress for %s", rec.TourID)
	}
	if err := os.WriteFile(s.recordPath(rec.TourID), data, 0600); err != nil {
		observability.Store().OnStoreError("file", "set", err)
		return errors.Wrap(errors.ErrCodeStore, err, "write progress for %s", rec.TourID)
	}
	observability.Store().OnStoreSet("file", rec.TourID)
	return nil
}

// Delete removes a tour's record.
func (s *FileStore) Delete(ctx context.Context, tourID string) error {
	if err := errors.ValidateTourID(tourID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.recordPath(tourID))
	if err != nil && !os.IsNotExist(err) {
		observability.Store().OnStoreError("file", "delete", err)
		return errors.Wrap(errors.ErrCodeStore, err, "delete progress for %s", tourID)
	}
	return nil
}

// List returns all records ordered by tour ID.
func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list progress dir")
	}

	var out []*Record
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			// Corrupt record files are skipped, not fatal.
			continue
		}
		out = append(out, &rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TourID < out[j].TourID })
	return out, nil
}

// Close does nothing.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
