package cache

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
	"github.com/jhoicas/salon-finance-api/internal/domain/repository"
)

var _ repository.ParamsSnapshotStore = (*MemorySnapshotStore)(nil)

// MemorySnapshotStore snapshot en memoria del proceso; se usa cuando no hay REDIS_URL.
type MemorySnapshotStore struct {
	mu        sync.RWMutex
	snapshots map[string]finance.BusinessParams
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{snapshots: map[string]finance.BusinessParams{}}
}

func (s *MemorySnapshotStore) Get(_ context.Context, salonID string) (*finance.BusinessParams, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.snapshots[salonID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *MemorySnapshotStore) Set(_ context.Context, salonID string, p finance.BusinessParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.PaymentMethods = slices.Clone(p.PaymentMethods)
	p.WorkingDays.Holidays = slices.Clone(p.WorkingDays.Holidays)
	s.snapshots[salonID] = p
	return nil
}
