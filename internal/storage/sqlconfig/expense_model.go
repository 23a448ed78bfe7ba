package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// ErrExpenseNotFound is returned when an expense id does not exist.
var ErrExpenseNotFound = errors.New("expense not found")

// Expense represents an expense record.
type Expense struct {
	ID         uuid.UUID       `db:"id"`
	UserID     string          `db:"user_id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Note       *string         `db:"note"`
	IncurredAt time.Time       `db:"incurred_at"`
	CreatedAt  time.Time       `db:"created_at"`
}

// ExpenseCreate is the input for creating a new expense.
type ExpenseCreate struct {
	UserID     string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Note       *string
	IncurredAt time.Time
}

// ExpenseUpdate is a partial update. Unset fields are left unchanged.
// Note additionally distinguishes "set to null" (clear) from unset.
type ExpenseUpdate struct {
	CategoryID omit.Val[uuid.UUID]
	Amount     omit.Val[decimal.Decimal]
	Note       omitnull.Val[string]
	IncurredAt omit.Val[time.Time]
}

// IsZero reports whether the update carries no field changes.
func (u *ExpenseUpdate) IsZero() bool {
	return u.CategoryID.IsUnset() &&
		u.Amount.IsUnset() &&
		u.Note.IsUnset() &&
		u.IncurredAt.IsUnset()
}

// ExpenseFilter specifies filters for listing expenses.
type ExpenseFilter struct {
	UserID          *string
	CategoryID      *uuid.UUID
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// CategoryTotal is one row of the monthly aggregation: the summed amount of
// one user's expenses in one category, joined to the category name. Total is
// the text form of the SQL SUM so the decimal value is never routed through
// a float.
type CategoryTotal struct {
	CategoryID   uuid.UUID `db:"category_id"`
	CategoryName string    `db:"category_name"`
	Total        string    `db:"total"`
}

// IExpensesTable defines the interface for expense storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IExpensesTable --output mock_IExpensesTable.go
type IExpensesTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error)
	Update(ctx context.Context, id uuid.UUID, update *ExpenseUpdate) (*Expense, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error)
	AggregateMonthly(ctx context.Context, userID string, start time.Time, end time.Time) ([]*CategoryTotal, error)
}
