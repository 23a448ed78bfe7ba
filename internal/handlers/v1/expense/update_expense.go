package expense

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// UpdateExpenseBody is the request body for updating an expense. Absent
// fields are left unchanged. Note is tri-state: absent keeps the current
// note, an explicit null clears it, a string replaces it.
type UpdateExpenseBody struct {
	Amount     string          `json:"amount,omitempty" doc:"Decimal amount, unchanged when absent"`
	CategoryID string          `json:"categoryId,omitempty" doc:"Category UUID, unchanged when absent"`
	Note       json.RawMessage `json:"note,omitempty" doc:"Free-text note: absent keeps, null clears, string replaces"`
	IncurredAt string          `json:"incurredAt" doc:"RFC3339 instant the expense occurred"`
}

// UpdateExpenseInput is the Huma input for updating an expense.
type UpdateExpenseInput struct {
	ID   string `path:"id" doc:"Expense UUID"`
	Body UpdateExpenseBody
}

// UpdateExpenseOutput is the Huma output for updating an expense.
type UpdateExpenseOutput struct {
	Body Expense
}

// expenseUpdater is the interface for updating expenses.
type expenseUpdater interface {
	UpdateExpense(ctx context.Context, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error)
}

// UpdateExpenseHandler handles PUT /expenses/{id}.
type UpdateExpenseHandler struct {
	ExpenseService expenseUpdater
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(svc expenseUpdater) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{ExpenseService: svc}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/expenses/{id}",
		Summary:     "Update expense",
		Description: "Partially updates an expense and invalidates the cached summaries for every month it touched.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

var jsonNull = []byte("null")

func parseUpdateExpenseInput(input *UpdateExpenseInput) (uuid.UUID, service.ExpenseUpdate, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid expense id", err)
	}

	var update service.ExpenseUpdate

	if input.Body.Amount != "" {
		amount, err := decimal.NewFromString(input.Body.Amount)
		if err != nil {
			return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
		}
		update.Amount.Set(amount)
	}

	if input.Body.CategoryID != "" {
		categoryID, err := uuid.FromString(input.Body.CategoryID)
		if err != nil {
			return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
		}
		update.CategoryID.Set(categoryID)
	}

	if len(input.Body.Note) != 0 {
		if bytes.Equal(bytes.TrimSpace(input.Body.Note), jsonNull) {
			update.Note.Null()
		} else {
			var note string
			if err := json.Unmarshal(input.Body.Note, &note); err != nil {
				return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid note", err)
			}
			update.Note.Set(note)
		}
	}

	if input.Body.IncurredAt != "" {
		incurredAt, err := time.Parse(time.RFC3339, input.Body.IncurredAt)
		if err != nil {
			return uuid.Nil, service.ExpenseUpdate{}, huma.NewError(http.StatusBadRequest, "invalid incurredAt", err)
		}
		update.IncurredAt.Set(incurredAt)
	}

	return id, update, nil
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	id, update, err := parseUpdateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateExpenseMs")
	}
	updated, err := h.ExpenseService.UpdateExpense(ctx, id, update)
	if stopTimer != nil {
		stopTimer()
	}
	if errors.Is(err, sqlconfig.ErrExpenseNotFound) {
		return nil, huma.NewError(http.StatusNotFound, "expense not found", err)
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update expense", err)
	}

	return &UpdateExpenseOutput{Body: expenseFromService(updated)}, nil
}
