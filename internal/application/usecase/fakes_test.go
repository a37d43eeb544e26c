package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/salon-finance-api/internal/domain"
	"github.com/jhoicas/salon-finance-api/internal/domain/entity"
	"github.com/jhoicas/salon-finance-api/internal/domain/finance"
)

// ── fakes en memoria de los puertos ───────────────────────────────────────────

var errSourceDown = errors.New("fuente caída")

type fakePaymentRepo struct {
	mu   sync.Mutex
	rows map[string]entity.PaymentMethod
	fail bool
}

func newFakePaymentRepo(methods ...entity.PaymentMethod) *fakePaymentRepo {
	r := &fakePaymentRepo{rows: map[string]entity.PaymentMethod{}}
	for _, m := range methods {
		r.rows[m.ID] = m
	}
	return r
}

func (r *fakePaymentRepo) Create(_ context.Context, m *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[m.ID] = *m
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*entity.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakePaymentRepo) Update(_ context.Context, m *entity.PaymentMethod) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[m.ID] = *m
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.rows[id]; !ok || m.SalonID != salonID {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *fakePaymentRepo) ListBySalon(_ context.Context, salonID string) ([]entity.PaymentMethod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errSourceDown
	}
	out := []entity.PaymentMethod{}
	for _, m := range r.rows {
		if m.SalonID == salonID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeSettingsRepo struct {
	mu   sync.Mutex
	rows map[string]entity.BusinessSettings
	fail bool
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]entity.BusinessSettings{}}
}

func (r *fakeSettingsRepo) Get(_ context.Context, salonID string) (*entity.BusinessSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errSourceDown
	}
	s, ok := r.rows[salonID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, s *entity.BusinessSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.SalonID] = *s
	return nil
}

type fakeGoalRepo struct {
	mu   sync.Mutex
	rows map[string]entity.Goal
	fail bool
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{rows: map[string]entity.Goal{}}
}

func (r *fakeGoalRepo) Get(_ context.Context, salonID string) (*entity.Goal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errSourceDown
	}
	g, ok := r.rows[salonID]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *fakeGoalRepo) Save(_ context.Context, g *entity.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[g.SalonID] = *g
	return nil
}

type fakeSnapshotStore struct {
	mu   sync.Mutex
	rows map[string]finance.BusinessParams
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{rows: map[string]finance.BusinessParams{}}
}

func (s *fakeSnapshotStore) Get(_ context.Context, salonID string) (*finance.BusinessParams, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.rows[salonID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeSnapshotStore) Set(_ context.Context, salonID string, p finance.BusinessParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[salonID] = p
	return nil
}

type fakeMaterialRepo struct {
	rows map[string]entity.Material
}

func newFakeMaterialRepo() *fakeMaterialRepo {
	return &fakeMaterialRepo{rows: map[string]entity.Material{}}
}

func (r *fakeMaterialRepo) Create(_ context.Context, m *entity.Material) error {
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeMaterialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *fakeMaterialRepo) Update(_ context.Context, m *entity.Material) error {
	r.rows[m.ID] = *m
	return nil
}

func (r *fakeMaterialRepo) Delete(_ context.Context, _, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeMaterialRepo) ListBySalon(_ context.Context, salonID string) ([]entity.Material, error) {
	out := []entity.Material{}
	for _, m := range r.rows {
		if m.SalonID == salonID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeServiceRepo struct {
	rows    map[string]entity.Service
	updates int
	// scale > 0 redondea los costos al guardar, como las columnas NUMERIC(18,scale).
	scale int32
}

func (r *fakeServiceRepo) store(s entity.Service) {
	if r.scale > 0 {
		s.TotalCost = s.TotalCost.Round(r.scale)
		s.GrossProfit = s.GrossProfit.Round(r.scale)
		s.ProfitMarginPct = s.ProfitMarginPct.Round(r.scale)
		lines := make([]entity.MaterialCost, len(s.Materials))
		for i, l := range s.Materials {
			l.Cost = l.Cost.Round(r.scale)
			lines[i] = l
		}
		s.Materials = lines
	}
	r.rows[s.ID] = s
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{rows: map[string]entity.Service{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, s *entity.Service) error {
	r.store(*s)
	return nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id string) (*entity.Service, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, s *entity.Service) error {
	r.store(*s)
	r.updates++
	return nil
}

func (r *fakeServiceRepo) Delete(_ context.Context, _, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeServiceRepo) ListBySalon(_ context.Context, salonID string) ([]entity.Service, error) {
	out := []entity.Service{}
	for _, s := range r.rows {
		if s.SalonID == salonID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeCashRepo conserva el orden de inserción, como una tabla sin ORDER BY.
type fakeCashRepo struct {
	mu   sync.Mutex
	rows []entity.CashFlowEntry
}

func (r *fakeCashRepo) Create(_ context.Context, e *entity.CashFlowEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *e)
	return nil
}

func (r *fakeCashRepo) GetByID(_ context.Context, id string) (*entity.CashFlowEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.rows {
		if e.ID == id {
			e := e
			return &e, nil
		}
	}
	return nil, nil
}

func (r *fakeCashRepo) Delete(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.rows {
		if e.ID == id && e.SalonID == salonID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCashRepo) ListBySalon(_ context.Context, salonID string) ([]entity.CashFlowEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.CashFlowEntry{}
	for _, e := range r.rows {
		if e.SalonID == salonID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeTierRepo struct {
	mu   sync.Mutex
	rows map[string][]entity.Tier
}

func newFakeTierRepo() *fakeTierRepo {
	return &fakeTierRepo{rows: map[string][]entity.Tier{}}
}

func (r *fakeTierRepo) ListBySalon(_ context.Context, salonID string) ([]entity.Tier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entity.Tier{}, r.rows[salonID]...), nil
}

func (r *fakeTierRepo) Replace(_ context.Context, salonID string, tiers []entity.Tier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[salonID] = append([]entity.Tier{}, tiers...)
	return nil
}

type fakeExpenseRepo struct {
	mu   sync.Mutex
	rows []entity.Expense
}

func (r *fakeExpenseRepo) Create(_ context.Context, e *entity.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, *e)
	return nil
}

func (r *fakeExpenseRepo) Delete(_ context.Context, salonID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.rows {
		if e.ID == id && e.SalonID == salonID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeExpenseRepo) ListByKind(_ context.Context, salonID, kind string, year int) ([]entity.Expense, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entity.Expense{}
	for _, e := range r.rows {
		if e.SalonID == salonID && e.Kind == kind && (year == 0 || e.Year == year) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeSalonRepo struct {
	rows map[string]entity.Salon
}

func (r *fakeSalonRepo) Create(_ context.Context, s *entity.Salon) error {
	if r.rows == nil {
		r.rows = map[string]entity.Salon{}
	}
	r.rows[s.ID] = *s
	return nil
}

func (r *fakeSalonRepo) GetByID(_ context.Context, id string) (*entity.Salon, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}
