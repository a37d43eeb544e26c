package http_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
)

var errSourceDown = errors.New("fuente no disponible")

type memPaymentMethods struct {
	mu    sync.Mutex
	items []entity.PaymentMethod
	fail  bool
}

func (r *memPaymentMethods) Create(_ context.Context, m *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *m)
	return nil
}

func (r *memPaymentMethods) GetByID(_ context.Context, id string) (*entity.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			m := r.items[i]
			return &m, nil
		}
	}
	return nil, nil
}

func (r *memPaymentMethods) Update(_ context.Context, m *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == m.ID {
			r.items[i] = *m
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPaymentMethods) Delete(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id && r.items[i].SalonID == salonID {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memPaymentMethods) ListBySalon(_ context.Context, salonID string) ([]entity.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errSourceDown
	}
	out := []entity.PaymentMethod{}
	for _, m := range r.items {
		if m.SalonID == salonID {
			out = append(out, m)
		}
	}
	return out, nil
}

// memSettings y memGoals: salón sin configuración.
type memSettings struct{}

func (memSettings) Get(context.Context, string) (*entity.BusinessSettings, error) { return nil, nil }
func (memSettings) Save(context.Context, *entity.BusinessSettings) error       { return nil }

type memGoals struct{}

func (memGoals) Get(context.Context, string) (*entity.Goal, error) { return nil, nil }
func (memGoals) Save(context.Context, *entity.Goal) error         { return nil }

type memCashFlow struct {
	mu      sync.Mutex
	entries []entity.CashFlowEntry
}

func (r *memCashFlow) Create(_ context.Context, e *entity.CashFlowEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memCashFlow) GetByID(_ context.Context, id string) (*entity.CashFlowEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			e := r.entries[i]
			return &e, nil
		}
	}
	return nil, nil
}

func (r *memCashFlow) Delete(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id && r.entries[i].SalonID == salonID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *memCashFlow) ListBySalon(_ context.Context, salonID string) ([]entity.CashFlowEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.CashFlowEntry{}
	for _, e := range r.entries {
		if e.SalonID == salonID {
			out = append(out, e)
		}
	}
	return out, nil
}
