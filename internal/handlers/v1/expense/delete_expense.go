package expense

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// DeleteExpenseInput is the Huma input for deleting an expense.
type DeleteExpenseInput struct {
	ID string `path:"id" doc:"Expense UUID"`
}

// DeleteExpenseResponse is the acknowledgement body for a deletion.
type DeleteExpenseResponse struct {
	OK bool `json:"ok" doc:"Always true on success"`
}

// DeleteExpenseOutput is the Huma output for deleting an expense.
type DeleteExpenseOutput struct {
	Body DeleteExpenseResponse
}

// expenseDeleter is the interface for deleting expenses.
type expenseDeleter interface {
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

// DeleteExpenseHandler handles DELETE /expenses/{id}.
type DeleteExpenseHandler struct {
	ExpenseService expenseDeleter
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(svc expenseDeleter) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{ExpenseService: svc}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/expenses/{id}",
		Summary:     "Delete expense",
		Description: "Deletes an expense and invalidates the cached summary for its month.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("deleteExpenseMs")
	}
	err = h.ExpenseService.DeleteExpense(ctx, id)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sqlconfig.ErrExpenseNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "expense not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete expense", err)
	}

	return &DeleteExpenseOutput{Body: DeleteExpenseResponse{OK: true}}, nil
}
