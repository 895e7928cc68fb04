package usecase_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/entity"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
	"github.com/jhoicas/sigec-api/internal/domain/repository"
)

// ─── Empleados ───────────────────────────────────────────────────────────────

type fakeEmployees struct {
	mu   sync.Mutex
	byID map[int64]*entity.Employee
}

func newFakeEmployees(es ...*entity.Employee) *fakeEmployees {
	f := &fakeEmployees{byID: map[int64]*entity.Employee{}}
	for _, e := range es {
		f.byID[e.Legajo] = e
	}
	return f
}

func (f *fakeEmployees) Create(_ context.Context, e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *e
	f.byID[e.Legajo] = &cp
	return nil
}

func (f *fakeEmployees) GetByLegajo(_ context.Context, legajo int64) (*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e, ok := f.byID[legajo]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEmployees) GetByEmail(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}

func (f *fakeEmployees) GetByResetTokenHash(context.Context, string) (*entity.Employee, error) {
	return nil, nil
}

func (f *fakeEmployees) Update(_ context.Context, e *entity.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[e.Legajo]; !ok {
		return domain.ErrEmployeeNotFound
	}
	cp := *e
	f.byID[e.Legajo] = &cp
	return nil
}

func (f *fakeEmployees) List(_ context.Context, limit, offset int) ([]*entity.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Employee
	for _, e := range f.byID {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Legajo < out[j].Legajo })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeMailer struct {
	sent []ports.MailMessage
}

func (m *fakeMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

// ─── Planes y clientes ───────────────────────────────────────────────────────

type fakePlans struct {
	byID   map[int64]*entity.Plan
	nextID int64
}

func newFakePlans(ps ...*entity.Plan) *fakePlans {
	f := &fakePlans{byID: map[int64]*entity.Plan{}}
	for _, p := range ps {
		f.byID[p.ID] = p
		if p.ID > f.nextID {
			f.nextID = p.ID
		}
	}
	return f
}

func (f *fakePlans) Create(_ context.Context, p *entity.Plan) error {
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePlans) GetByID(_ context.Context, id int64) (*entity.Plan, error) {
	if p, ok := f.byID[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePlans) List(_ context.Context, includeInactive bool) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for _, p := range f.byID {
		if p.Active || includeInactive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlans) Update(_ context.Context, p *entity.Plan) error {
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakePlans) SoftDelete(_ context.Context, id int64) error {
	p, ok := f.byID[id]
	if !ok || !p.Active {
		return domain.ErrNotFound
	}
	p.Active = false
	return nil
}

type fakeClients struct {
	byID map[int64]*entity.Client
}

func (f *fakeClients) Create(_ context.Context, c *entity.Client) error {
	c.ID = int64(len(f.byID) + 1)
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	if c, ok := f.byID[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeClients) GetByDNI(_ context.Context, dni string) (*entity.Client, error) {
	for _, c := range f.byID {
		if c.DNI == dni {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClients) ListByAdvisor(_ context.Context, legajo int64) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.byID {
		if c.AdvisorLegajo == legajo {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeClients) LockDNI(context.Context, string) error { return nil }

func (f *fakeClients) Update(_ context.Context, c *entity.Client) error {
	cp := *c
	f.byID[c.ID] = &cp
	return nil
}

// ─── Lista de precios ────────────────────────────────────────────────────────

type fakePrices struct {
	rows      []*entity.PriceEntry
	batchErr  error
	increased []decimal.Decimal
}

var _ repository.PriceListRepository = (*fakePrices)(nil)

func (f *fakePrices) FindPrice(_ context.Context, planID int64, list pricing.IncomeType, band pricing.BandKey) (decimal.Decimal, error) {
	for _, r := range f.rows {
		if r.Active && r.PlanID == planID && r.IncomeType == list && r.BandKey == band {
			return r.Price, nil
		}
	}
	return decimal.Zero, domain.ErrNotFound
}

func (f *fakePrices) CreateBatch(_ context.Context, entries []*entity.PriceEntry) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, e := range entries {
		e.ID = int64(len(f.rows) + 1)
		f.rows = append(f.rows, e)
	}
	return nil
}

func (f *fakePrices) GetByID(_ context.Context, id int64) (*entity.PriceEntry, error) {
	for _, r := range f.rows {
		if r.ID == id && r.Active {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakePrices) ListByPlanAndType(_ context.Context, planID int64, t pricing.IncomeType) ([]*entity.PriceEntry, error) {
	var out []*entity.PriceEntry
	for _, r := range f.rows {
		if r.Active && r.PlanID == planID && r.IncomeType == t {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePrices) ListByType(_ context.Context, t pricing.IncomeType) ([]*entity.PriceEntry, error) {
	var out []*entity.PriceEntry
	for _, r := range f.rows {
		if r.Active && r.IncomeType == t {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePrices) Update(_ context.Context, e *entity.PriceEntry) error {
	for i, r := range f.rows {
		if r.ID == e.ID {
			cp := *e
			f.rows[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePrices) SoftDelete(_ context.Context, id int64) error {
	for _, r := range f.rows {
		if r.ID == id && r.Active {
			r.Active = false
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakePrices) IncreaseAll(_ context.Context, pct decimal.Decimal, t pricing.IncomeType) (int64, error) {
	f.increased = append(f.increased, pct)
	factor := decimal.NewFromInt(1).Add(pct.Div(decimal.NewFromInt(100)))
	var n int64
	for _, r := range f.rows {
		if r.Active && (t == "" || r.IncomeType == t) {
			r.Price = r.Price.Mul(factor).Round(2)
			n++
		}
	}
	return n, nil
}

type fakePriceTx struct {
	prices *fakePrices
	runs   int
}

func (t *fakePriceTx) RunPriceList(_ context.Context, fn func(prices repository.PriceListRepository) error) error {
	t.runs++
	return fn(t.prices)
}

type fakeMonotributo struct {
	rows map[string]*entity.MonotributoContribution
}

func (f *fakeMonotributo) FindContributionByCategory(_ context.Context, cat pricing.MonotributoCategory) (decimal.Decimal, error) {
	if r, ok := f.rows[string(cat)]; ok {
		return r.Amount, nil
	}
	return decimal.Zero, domain.ErrNotFound
}

func (f *fakeMonotributo) FindAdherentContribution(ctx context.Context) (decimal.Decimal, error) {
	return f.FindContributionByCategory(ctx, entity.AdherentCategory)
}

func (f *fakeMonotributo) Upsert(_ context.Context, c *entity.MonotributoContribution) error {
	cp := *c
	f.rows[c.Category] = &cp
	return nil
}

func (f *fakeMonotributo) List(_ context.Context) ([]*entity.MonotributoContribution, error) {
	var out []*entity.MonotributoContribution
	for _, r := range f.rows {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}
