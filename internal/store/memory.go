package store

import (
	"context"
	"sort"
	"sync"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// MemoryStore keeps records in memory. It backs development runs without a
// database and doubles as the test store.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]types.Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]types.Record)}
}

func (s *MemoryStore) FetchUnresolved(ctx context.Context, limit int) ([]types.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []types.Record
	for _, rec := range s.records {
		if !rec.Resolved() {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, records []types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range records {
		s.records[rec.ID] = rec
	}
	return nil
}

func (s *MemoryStore) CountUnresolved(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, rec := range s.records {
		if !rec.Resolved() {
			count++
		}
	}
	return count, nil
}

// Get returns a stored record by id.
func (s *MemoryStore) Get(id string) (types.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	return rec, ok
}
