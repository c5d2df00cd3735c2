package cache

import (
	"sync"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

const defaultMemoryCapacity = 512

type memoryEntry struct {
	label  types.LocationLabel
	stored time.Time
}

// Memory is a bounded in-process cache tier. When full, the oldest entry by
// insertion time is evicted.
type Memory struct {
	mu       sync.RWMutex
	entries  map[string]memoryEntry
	order    []string
	capacity int
	now      func() time.Time
}

// NewMemory returns a memory store holding at most capacity entries.
// A non-positive capacity uses the default.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &Memory{
		entries:  make(map[string]memoryEntry, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

func (m *Memory) Get(key types.LocationKey) (*types.LocationLabel, bool) {
	token := key.Token()

	m.mu.RLock()
	entry, ok := m.entries[token]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if entry.label.Expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, token)
		m.mu.Unlock()
		return nil, false
	}
	label := entry.label
	return &label, true
}

func (m *Memory) Set(key types.LocationKey, label types.LocationLabel) {
	token := key.Token()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[token]; !exists {
		for len(m.entries) >= m.capacity && len(m.order) > 0 {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.entries, oldest)
		}
		m.order = append(m.order, token)
	}
	m.entries[token] = memoryEntry{label: label, stored: m.now()}
}

func (m *Memory) Evict(olderThan *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if olderThan == nil {
		m.entries = make(map[string]memoryEntry, m.capacity)
		m.order = nil
		return nil
	}
	m.removeMatchingLocked(func(e memoryEntry) bool { return e.stored.Before(*olderThan) })
	return nil
}

func (m *Memory) Purge(pred func(types.LocationLabel) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeMatchingLocked(func(e memoryEntry) bool { return pred(e.label) })
	return nil
}

func (m *Memory) removeMatchingLocked(match func(memoryEntry) bool) {
	kept := m.order[:0]
	for _, token := range m.order {
		entry, ok := m.entries[token]
		if ok && match(entry) {
			delete(m.entries, token)
			continue
		}
		kept = append(kept, token)
	}
	m.order = kept
}

// Len returns the number of cached entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
