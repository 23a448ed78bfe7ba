package expense

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/expense-server/internal/service"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

// mockExpenseUpdater is a mock for expenseUpdater.
type mockExpenseUpdater struct {
	mock.Mock
}

func (m *mockExpenseUpdater) UpdateExpense(ctx context.Context, id uuid.UUID, update service.ExpenseUpdate) (*service.Expense, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Expense), args.Error(1)
}

func newUpdateTestAPI(t *testing.T, svc expenseUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateExpenseHandler(svc).Register(api)
	return api
}

// -- parseUpdateExpenseInput unit tests --
// The note field is tri-state: absent, explicit null, or a string.

func TestParseUpdateExpenseInput_AbsentFieldsStayUnset(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	input := &UpdateExpenseInput{
		ID: id.String(),
		Body: UpdateExpenseBody{
			IncurredAt: "2025-01-15T10:30:00Z",
		},
	}

	parsedID, update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	assert.Equal(t, id, parsedID)
	assert.True(t, update.Amount.IsUnset())
	assert.True(t, update.CategoryID.IsUnset())
	assert.True(t, update.Note.IsUnset())

	incurredAt, ok := update.IncurredAt.Get()
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC), incurredAt.UTC())
}

func TestParseUpdateExpenseInput_NullNoteClears(t *testing.T) {
	input := &UpdateExpenseInput{
		ID: uuid.Must(uuid.NewV4()).String(),
		Body: UpdateExpenseBody{
			Note:       json.RawMessage("null"),
			IncurredAt: "2025-01-15T10:30:00Z",
		},
	}

	_, update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	assert.True(t, update.Note.IsNull())
}

func TestParseUpdateExpenseInput_StringNoteReplaces(t *testing.T) {
	input := &UpdateExpenseInput{
		ID: uuid.Must(uuid.NewV4()).String(),
		Body: UpdateExpenseBody{
			Note:       json.RawMessage(`"new note"`),
			IncurredAt: "2025-01-15T10:30:00Z",
		},
	}

	_, update, err := parseUpdateExpenseInput(input)
	assert.NoError(t, err)
	note, ok := update.Note.Get()
	assert.True(t, ok)
	assert.Equal(t, "new note", note)
}

func TestParseUpdateExpenseInput_InvalidID(t *testing.T) {
	input := &UpdateExpenseInput{
		ID:   "not-a-uuid",
		Body: UpdateExpenseBody{IncurredAt: "2025-01-15T10:30:00Z"},
	}

	_, _, err := parseUpdateExpenseInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_UpdateExpense_Success(t *testing.T) {
	expenseID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	incurredAt := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, expenseID, mock.MatchedBy(func(update service.ExpenseUpdate) bool {
		amount, ok := update.Amount.Get()
		return ok && amount.Equal(decimal.RequireFromString("99.99"))
	})).Return(&service.Expense{
		ID:         expenseID,
		UserID:     "u1",
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("99.99"),
		IncurredAt: incurredAt,
	}, nil)

	api := newUpdateTestAPI(t, mockSvc)
	resp := api.Put("/expenses/"+expenseID.String(), map[string]any{
		"amount":     "99.99",
		"incurredAt": "2025-02-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body Expense
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, expenseID.String(), body.ID)
	assert.Equal(t, "99.99", body.Amount)

	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, sqlconfig.ErrExpenseNotFound)

	api := newUpdateTestAPI(t, mockSvc)
	resp := api.Put("/expenses/"+uuid.Must(uuid.NewV4()).String(), map[string]any{
		"incurredAt": "2025-02-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateExpense_InvalidID(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)

	api := newUpdateTestAPI(t, mockSvc)
	resp := api.Put("/expenses/not-a-uuid", map[string]any{
		"incurredAt": "2025-02-01T00:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}
