package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/cache"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// fakeExpensesTable is an in-memory IExpensesTable with a real aggregation,
// so cache-aside tests can observe mutations flowing through to summaries.
type fakeExpensesTable struct {
	mu             sync.Mutex
	rows           map[uuid.UUID]*sqlconfig.Expense
	categoryNames  map[uuid.UUID]string
	aggregateCalls int
	insertErr      error
}

var _ sqlconfig.IExpensesTable = (*fakeExpensesTable)(nil)

func newFakeExpensesTable() *fakeExpensesTable {
	return &fakeExpensesTable{
		rows:          make(map[uuid.UUID]*sqlconfig.Expense),
		categoryNames: make(map[uuid.UUID]string),
	}
}

func (f *fakeExpensesTable) registerCategory(name string) uuid.UUID {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.Must(uuid.NewV4())
	f.categoryNames[id] = name
	return id
}

func (f *fakeExpensesTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok {
		return nil, sqlconfig.ErrExpenseNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeExpensesTable) Insert(ctx context.Context, create *sqlconfig.ExpenseCreate) (*sqlconfig.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return nil, f.insertErr
	}

	row := &sqlconfig.Expense{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     create.UserID,
		CategoryID: create.CategoryID,
		Amount:     create.Amount,
		Note:       create.Note,
		IncurredAt: create.IncurredAt.UTC(),
		CreatedAt:  time.Now().UTC(),
	}
	f.rows[row.ID] = row

	copied := *row
	return &copied, nil
}

func (f *fakeExpensesTable) Update(ctx context.Context, id uuid.UUID, update *sqlconfig.ExpenseUpdate) (*sqlconfig.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	row, ok := f.rows[id]
	if !ok {
		return nil, sqlconfig.ErrExpenseNotFound
	}

	if categoryID, ok := update.CategoryID.Get(); ok {
		row.CategoryID = categoryID
	}
	if amount, ok := update.Amount.Get(); ok {
		row.Amount = amount
	}
	if note, ok := update.Note.Get(); ok {
		row.Note = &note
	} else if update.Note.IsNull() {
		row.Note = nil
	}
	if incurredAt, ok := update.IncurredAt.Get(); ok {
		row.IncurredAt = incurredAt.UTC()
	}

	copied := *row
	return &copied, nil
}

func (f *fakeExpensesTable) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rows[id]; !ok {
		return sqlconfig.ErrExpenseNotFound
	}
	delete(f.rows, id)
	return nil
}

func (f *fakeExpensesTable) List(ctx context.Context, filter *sqlconfig.ExpenseFilter) ([]*sqlconfig.Expense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*sqlconfig.Expense
	for _, row := range f.rows {
		if filter != nil && filter.UserID != nil && row.UserID != *filter.UserID {
			continue
		}
		if filter != nil && filter.CategoryID != nil && row.CategoryID != *filter.CategoryID {
			continue
		}
		copied := *row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeExpensesTable) AggregateMonthly(ctx context.Context, userID string, start time.Time, end time.Time) ([]*sqlconfig.CategoryTotal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.aggregateCalls++

	totals := make(map[uuid.UUID]decimal.Decimal)
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if row.IncurredAt.Before(start) || !row.IncurredAt.Before(end) {
			continue
		}
		totals[row.CategoryID] = totals[row.CategoryID].Add(row.Amount)
	}

	out := make([]*sqlconfig.CategoryTotal, 0, len(totals))
	for categoryID, total := range totals {
		out = append(out, &sqlconfig.CategoryTotal{
			CategoryID:   categoryID,
			CategoryName: f.categoryNames[categoryID],
			Total:        total.String(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return decimal.RequireFromString(out[i].Total).GreaterThan(decimal.RequireFromString(out[j].Total))
	})
	return out, nil
}

// spyCache delegates to a real cache and records traffic.
type spyCache struct {
	inner cache.Cache

	mu      sync.Mutex
	gets    int
	sets    int
	deletes []string
}

var _ cache.Cache = (*spyCache)(nil)

func newSpyCache(inner cache.Cache) *spyCache {
	return &spyCache{inner: inner}
}

func (s *spyCache) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	s.gets++
	s.mu.Unlock()
	return s.inner.Get(ctx, key)
}

func (s *spyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	s.sets++
	s.mu.Unlock()
	return s.inner.Set(ctx, key, value, ttl)
}

func (s *spyCache) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.deletes = append(s.deletes, key)
	s.mu.Unlock()
	return s.inner.Delete(ctx, key)
}

func (s *spyCache) Ping(ctx context.Context) error { return s.inner.Ping(ctx) }
func (s *spyCache) Close() error                   { return s.inner.Close() }

func (s *spyCache) deletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.deletes...)
}

// failingCache errors on the configured operations.
type failingCache struct {
	getErr    error
	setErr    error
	deleteErr error
}

var _ cache.Cache = (*failingCache)(nil)

func (f *failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, cache.ErrNotFound
}

func (f *failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return f.setErr
}

func (f *failingCache) Delete(ctx context.Context, key string) error {
	return f.deleteErr
}

func (f *failingCache) Ping(ctx context.Context) error { return nil }
func (f *failingCache) Close() error                   { return nil }
