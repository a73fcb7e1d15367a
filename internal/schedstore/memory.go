package schedstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemStore implements Store in process memory. It is safe for concurrent
// use and is the default backing for the HTTP API when no database is
// configured.
type MemStore struct {
	mu        sync.RWMutex
	schedules map[string]*Stored
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{schedules: make(map[string]*Stored)}
}

// CreateSchema is a no-op for the in-memory store.
func (m *MemStore) CreateSchema(ctx context.Context) error { return nil }

// SaveSchedule stores a schedule, assigning an id and creation time when
// empty, and returns the stored record.
func (m *MemStore) SaveSchedule(ctx context.Context, s *Stored) (*Stored, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.schedules[s.ID] = s
	return s, nil
}

// GetSchedule returns the schedule with the given id.
func (m *MemStore) GetSchedule(ctx context.Context, id string) (*Stored, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s, nil
}

// ListSchedules returns metadata for every stored schedule, newest first.
func (m *MemStore) ListSchedules(ctx context.Context) ([]Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metas := make([]Meta, 0, len(m.schedules))
	for _, s := range m.schedules {
		metas = append(metas, Meta{
			ID:        s.ID,
			Name:      s.Name,
			CreatedAt: s.CreatedAt,
			Summary:   s.Summary,
		})
	}
	sort.Slice(metas, func(i, j int) bool {
		if !metas[i].CreatedAt.Equal(metas[j].CreatedAt) {
			return metas[i].CreatedAt.After(metas[j].CreatedAt)
		}
		return metas[i].ID < metas[j].ID
	})
	return metas, nil
}

// DeleteSchedule removes the schedule with the given id.
func (m *MemStore) DeleteSchedule(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.schedules[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(m.schedules, id)
	return nil
}
