package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IExpensesTable = (*ExpensesTable)(nil)

var expenseColumns = []string{"id", "user_id", "category_id", "amount", "note", "incurred_at", "created_at"}

type ExpensesTable struct {
	exec bob.Executor
}

func NewExpensesTable(db *sql.DB) *ExpensesTable {
	return &ExpensesTable{exec: bob.NewDB(db)}
}

// FindByID retrieves an expense by primary key.
func (t *ExpensesTable) FindByID(ctx context.Context, id uuid.UUID) (*Expense, error) {
	query := psql.Select(
		sm.Columns(toAnySlice(expenseColumns)...),
		sm.From("expenses"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Insert creates a new expense and returns the persisted row.
func (t *ExpensesTable) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	query := psql.Insert(
		im.Into("expenses", "user_id", "category_id", "amount", "note", "incurred_at"),
		im.Values(psql.Arg(
			create.UserID,
			create.CategoryID,
			create.Amount,
			create.Note,
			create.IncurredAt.UTC(),
		)),
		im.Returning(toAnySlice(expenseColumns)...),
	)

	return bob.One(ctx, t.exec, query, scan.StructMapper[*Expense]())
}

// Update applies a partial update and returns the updated row.
// Unset fields are not included in the SET clause.
func (t *ExpensesTable) Update(ctx context.Context, id uuid.UUID, update *ExpenseUpdate) (*Expense, error) {
	if update.IsZero() {
		// Nothing to set; an empty SET clause is invalid SQL.
		return t.FindByID(ctx, id)
	}

	queryMods := []bob.Mod[*dialect.UpdateQuery]{um.Table("expenses")}

	if categoryID, ok := update.CategoryID.Get(); ok {
		queryMods = append(queryMods, um.SetCol("category_id").ToArg(categoryID))
	}
	if amount, ok := update.Amount.Get(); ok {
		queryMods = append(queryMods, um.SetCol("amount").ToArg(amount))
	}
	if note, ok := update.Note.Get(); ok {
		queryMods = append(queryMods, um.SetCol("note").ToArg(note))
	} else if update.Note.IsNull() {
		queryMods = append(queryMods, um.SetCol("note").ToArg(nil))
	}
	if incurredAt, ok := update.IncurredAt.Get(); ok {
		queryMods = append(queryMods, um.SetCol("incurred_at").ToArg(incurredAt.UTC()))
	}

	queryMods = append(queryMods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(toAnySlice(expenseColumns)...),
	)

	row, err := bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[*Expense]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// Delete removes an expense by primary key.
func (t *ExpensesTable) Delete(ctx context.Context, id uuid.UUID) error {
	query := psql.Delete(
		dm.From("expenses"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// List returns expenses matching the filter, newest first. Nil filter
// returns all. The caller's limit is extended by one row so it can detect
// whether a next page exists.
func (t *ExpensesTable) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(toAnySlice(expenseColumns)...),
		sm.From("expenses"),
	}
	if filter != nil {
		if filter.UserID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("user_id").EQ(psql.Arg(*filter.UserID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.MaxCreationTime != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*Expense]())
}

// AggregateMonthly sums one user's expense amounts per category over the
// half-open interval [start, end), joined to category names, ordered by the
// summed total descending. Both bounds are expected in UTC; incurred_at is
// stored UTC-normalized so the month boundary never drifts with timezones.
func (t *ExpensesTable) AggregateMonthly(ctx context.Context, userID string, start time.Time, end time.Time) ([]*CategoryTotal, error) {
	query := psql.Select(
		sm.Columns(
			"c.id AS category_id",
			"c.name AS category_name",
			"SUM(e.amount)::text AS total",
		),
		sm.From("expenses AS e"),
		sm.InnerJoin("categories AS c").On(psql.Raw("c.id = e.category_id")),
		sm.Where(psql.Raw("e.user_id = ?", userID)),
		sm.Where(psql.Raw("e.incurred_at >= ?", start)),
		sm.Where(psql.Raw("e.incurred_at < ?", end)),
		sm.GroupBy("c.id"),
		sm.GroupBy("c.name"),
		sm.OrderBy(psql.Raw("SUM(e.amount)")).Desc(),
	)

	return bob.All(ctx, t.exec, query, scan.StructMapper[*CategoryTotal]())
}

func toAnySlice(columns []string) []any {
	out := make([]any, len(columns))
	for i, column := range columns {
		out[i] = column
	}
	return out
}
