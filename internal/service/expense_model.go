package service

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/aarondl/opt/omitnull"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// Expense represents an expense in the service layer.
type Expense struct {
	ID         uuid.UUID
	UserID     string
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Note       *string
	IncurredAt time.Time
	CreatedAt  time.Time
}

// ExpenseCreate is the input for creating an expense. The owning user is
// passed separately and is immutable after creation.
type ExpenseCreate struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
	Note       *string
	IncurredAt time.Time
}

// ExpenseUpdate is a partial update: unset fields are left unchanged.
// Note distinguishes an explicit null (clear the note) from unset.
type ExpenseUpdate struct {
	CategoryID omit.Val[uuid.UUID]
	Amount     omit.Val[decimal.Decimal]
	Note       omitnull.Val[string]
	IncurredAt omit.Val[time.Time]
}

// CategorySummaryEntry is one line of a monthly summary: the summed amount
// of one user's expenses in one category. Total stays a decimal string end
// to end. The JSON encoding doubles as the cache value format, so a cache
// hit is returned verbatim.
type CategorySummaryEntry struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	Total        string `json:"total"`
}

// ExpenseCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type ExpenseCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// ExpenseListFilter narrows a listing to one user and/or category.
type ExpenseListFilter struct {
	UserID     *string
	CategoryID *uuid.UUID
}

func expenseFromStorage(row *sqlconfig.Expense) *Expense {
	return &Expense{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     row.Amount,
		Note:       row.Note,
		IncurredAt: row.IncurredAt.UTC(),
		CreatedAt:  row.CreatedAt,
	}
}
