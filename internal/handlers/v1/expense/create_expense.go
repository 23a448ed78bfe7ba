package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// CreateExpenseBody is the request body for creating an expense.
type CreateExpenseBody struct {
	UserID     string `json:"userId" minLength:"1" doc:"Owning user identifier"`
	CategoryID string `json:"categoryId" doc:"Category UUID"`
	Amount     string `json:"amount" doc:"Decimal amount (e.g. '12.50')"`
	Note       string `json:"note,omitempty" doc:"Optional free-text note"`
	IncurredAt string `json:"incurredAt" doc:"RFC3339 instant the expense occurred; determines the summary month"`
}

// CreateExpenseInput is the Huma input for creating an expense.
type CreateExpenseInput struct {
	Body CreateExpenseBody
}

// CreateExpenseOutput is the Huma output for creating an expense.
type CreateExpenseOutput struct {
	Status int
	Body   Expense
}

// expenseCreator is the interface for creating expenses.
type expenseCreator interface {
	CreateExpense(ctx context.Context, userID string, create service.ExpenseCreate) (*service.Expense, error)
}

// CreateExpenseHandler handles POST /expenses.
type CreateExpenseHandler struct {
	ExpenseService expenseCreator
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(svc expenseCreator) *CreateExpenseHandler {
	return &CreateExpenseHandler{ExpenseService: svc}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-expense",
		Method:      http.MethodPost,
		Path:        "/expenses",
		Summary:     "Create expense",
		Description: "Creates a new expense and invalidates the cached summary for its month.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func parseCreateExpenseInput(input *CreateExpenseInput) (string, service.ExpenseCreate, error) {
	categoryID, err := uuid.FromString(input.Body.CategoryID)
	if err != nil {
		return "", service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid categoryId", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return "", service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	incurredAt, err := time.Parse(time.RFC3339, input.Body.IncurredAt)
	if err != nil {
		return "", service.ExpenseCreate{}, huma.NewError(http.StatusBadRequest, "invalid incurredAt", err)
	}

	var note *string
	if input.Body.Note != "" {
		note = &input.Body.Note
	}

	return input.Body.UserID, service.ExpenseCreate{
		CategoryID: categoryID,
		Amount:     amount,
		Note:       note,
		IncurredAt: incurredAt,
	}, nil
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, create, err := parseCreateExpenseInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("createExpenseMs")
	}
	created, err := h.ExpenseService.CreateExpense(ctx, userID, create)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create expense", err)
	}

	if logData != nil {
		logData.AddData("expenseID", created.ID.String())
	}

	return &CreateExpenseOutput{
		Status: http.StatusCreated,
		Body:   expenseFromService(created),
	}, nil
}
