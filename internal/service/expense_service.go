package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/cache"
	"github.com/carson-networks/expense-server/internal/storage"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const defaultListLimit = 20

// ExpenseService handles expense business logic and owns the cache-aside
// discipline for monthly summaries: reads populate the cache, mutations
// invalidate every month key they touch after the store write commits.
type ExpenseService struct {
	storage    *storage.Storage
	cache      cache.Cache
	summaryTTL time.Duration
}

// NewExpenseService creates a new ExpenseService. The cache client is
// injected with process-wide lifetime; summaryTTL bounds how long a cached
// summary may outlive the data it was computed from.
func NewExpenseService(store *storage.Storage, summaryCache cache.Cache, summaryTTL time.Duration) *ExpenseService {
	return &ExpenseService{
		storage:    store,
		cache:      summaryCache,
		summaryTTL: summaryTTL,
	}
}

// CreateExpense persists a new expense, then invalidates the cached summary
// for the month the expense falls into. If the insert fails nothing is
// invalidated.
func (s *ExpenseService) CreateExpense(ctx context.Context, userID string, create ExpenseCreate) (*Expense, error) {
	row, err := s.storage.Expenses.Insert(ctx, &sqlconfig.ExpenseCreate{
		UserID:     userID,
		CategoryID: create.CategoryID,
		Amount:     create.Amount,
		Note:       create.Note,
		IncurredAt: create.IncurredAt.UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.invalidateSummary(ctx, row.UserID, row.IncurredAt); err != nil {
		return nil, err
	}

	return expenseFromStorage(row), nil
}

// UpdateExpense applies a partial update, then invalidates the cached
// summary for the expense's old month and, if the update moved it, the new
// month as well. A same-month amount or category change yields identical
// keys and a single delete, which already covers the only affected summary.
func (s *ExpenseService) UpdateExpense(ctx context.Context, id uuid.UUID, update ExpenseUpdate) (*Expense, error) {
	old, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.storage.Expenses.Update(ctx, id, &sqlconfig.ExpenseUpdate{
		CategoryID: update.CategoryID,
		Amount:     update.Amount,
		Note:       update.Note,
		IncurredAt: update.IncurredAt,
	})
	if err != nil {
		return nil, err
	}

	if err := s.invalidateSummary(ctx, old.UserID, old.IncurredAt); err != nil {
		return nil, err
	}

	oldKey := summaryKeyFor(old.UserID, old.IncurredAt)
	newKey := summaryKeyFor(updated.UserID, updated.IncurredAt)
	if newKey != oldKey {
		if err := s.invalidateSummary(ctx, updated.UserID, updated.IncurredAt); err != nil {
			return nil, err
		}
	}

	return expenseFromStorage(updated), nil
}

// DeleteExpense removes an expense and invalidates the cached summary for
// the month it belonged to.
func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	old, err := s.storage.Expenses.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Expenses.Delete(ctx, id); err != nil {
		return err
	}

	return s.invalidateSummary(ctx, old.UserID, old.IncurredAt)
}

// MonthlySummary returns one user's per-category totals for a calendar
// month, cache-aside: a cache hit is decoded and returned without touching
// the store; a miss runs the aggregation over the UTC month interval and
// repopulates the cache with TTL. An empty month is a valid, cacheable
// result. Cache failures on this path degrade to store reads; a mutation
// may still be invalidating concurrently, so staleness is bounded by the
// TTL rather than eliminated.
func (s *ExpenseService) MonthlySummary(ctx context.Context, userID string, year int, month int) ([]CategorySummaryEntry, error) {
	key := cache.SummaryKey(userID, year, month)

	cached, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var entries []CategorySummaryEntry
		if decodeErr := json.Unmarshal(cached, &entries); decodeErr == nil {
			return entries, nil
		}
		// Undecodable entries are treated as misses and overwritten below.
		logrus.WithField("key", key).Warn("ExpenseService.MonthlySummary.undecodable cache entry")
	case !errors.Is(err, cache.ErrNotFound):
		// Cache trouble must not take down reads; serve from the store.
		logrus.WithError(err).WithField("key", key).Warn("ExpenseService.MonthlySummary.cache get failed")
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	rows, err := s.storage.Expenses.AggregateMonthly(ctx, userID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	entries := make([]CategorySummaryEntry, len(rows))
	for i, row := range rows {
		entries[i] = CategorySummaryEntry{
			CategoryID:   row.CategoryID.String(),
			CategoryName: row.CategoryName,
			Total:        row.Total,
		}
	}

	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, payload, s.summaryTTL); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("ExpenseService.MonthlySummary.cache set failed")
	}

	return entries, nil
}

// ListExpenses returns a page of expenses using cursor-based pagination.
// Listing never consults the summary cache.
func (s *ExpenseService) ListExpenses(ctx context.Context, filter *ExpenseListFilter, cursor *ExpenseCursor) ([]Expense, *ExpenseCursor, error) {
	limit := defaultListLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	storageFilter := &sqlconfig.ExpenseFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}
	if filter != nil {
		storageFilter.UserID = filter.UserID
		storageFilter.CategoryID = filter.CategoryID
	}

	rows, err := s.storage.Expenses.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *ExpenseCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &ExpenseCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	converted := make([]Expense, len(rows))
	for i, row := range rows {
		converted[i] = *expenseFromStorage(row)
	}

	return converted, nextCursor, nil
}

// invalidateSummary deletes the cached summary for the month incurredAt
// falls into. Invalidation runs only after the store write succeeded, and
// its failure is surfaced: silently keeping a stale summary is the one
// outcome this layer may never produce.
func (s *ExpenseService) invalidateSummary(ctx context.Context, userID string, incurredAt time.Time) error {
	key := summaryKeyFor(userID, incurredAt)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate summary %s: %w", key, err)
	}
	return nil
}

func summaryKeyFor(userID string, incurredAt time.Time) string {
	utc := incurredAt.UTC()
	return cache.SummaryKey(userID, utc.Year(), int(utc.Month()))
}
