package expense

import (
	"time"

	"github.com/carson-networks/expense-server/internal/service"
)

// Expense is the API response model for an expense.
// It is used only for responses, not for request bodies.
type Expense struct {
	ID         string  `json:"id" doc:"Expense UUID"`
	UserID     string  `json:"userId" doc:"Owning user identifier"`
	CategoryID string  `json:"categoryId" doc:"Category UUID"`
	Amount     string  `json:"amount" doc:"Decimal amount as a string"`
	Note       *string `json:"note" doc:"Free-text note, null when unset"`
	IncurredAt string  `json:"incurredAt" doc:"RFC3339 UTC instant the expense occurred"`
}

func expenseFromService(exp *service.Expense) Expense {
	return Expense{
		ID:         exp.ID.String(),
		UserID:     exp.UserID,
		CategoryID: exp.CategoryID.String(),
		Amount:     exp.Amount.String(),
		Note:       exp.Note,
		IncurredAt: exp.IncurredAt.UTC().Format(time.RFC3339),
	}
}
