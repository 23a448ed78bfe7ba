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
)

// mockExpenseLister is a mock for expenseLister.
type mockExpenseLister struct {
	mock.Mock
}

func (m *mockExpenseLister) ListExpenses(ctx context.Context, filter *service.ExpenseListFilter, cursor *service.ExpenseCursor) ([]service.Expense, *service.ExpenseCursor, error) {
	args := m.Called(ctx, filter, cursor)
	var expenses []service.Expense
	if args.Get(0) != nil {
		expenses = args.Get(0).([]service.Expense)
	}
	var nextCursor *service.ExpenseCursor
	if args.Get(1) != nil {
		nextCursor = args.Get(1).(*service.ExpenseCursor)
	}
	return expenses, nextCursor, args.Error(2)
}

func newListTestAPI(t *testing.T, svc expenseLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListExpensesHandler(svc).Register(api)
	return api
}

func TestHTTP_ListExpenses_Success(t *testing.T) {
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	expenses := []service.Expense{
		{
			ID:         uuid.Must(uuid.NewV4()),
			UserID:     "u1",
			CategoryID: uuid.Must(uuid.NewV4()),
			Amount:     decimal.RequireFromString("5.00"),
			IncurredAt: created,
			CreatedAt:  created,
		},
	}

	mockSvc := new(mockExpenseLister)
	mockSvc.On("ListExpenses", mock.Anything, mock.MatchedBy(func(f *service.ExpenseListFilter) bool {
		return f != nil && f.UserID != nil && *f.UserID == "u1"
	}), (*service.ExpenseCursor)(nil)).Return(expenses, &service.ExpenseCursor{
		Position:        20,
		Limit:           20,
		MaxCreationTime: created,
	}, nil)

	api := newListTestAPI(t, mockSvc)
	resp := api.Post("/expenses/list", map[string]any{
		"userId": "u1",
	})

	assert.Equal(t, http.StatusOK, resp.Code)

	var body ListExpensesResponseBody
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.Expenses, 1)
	assert.Equal(t, "u1", body.Expenses[0].UserID)
	assert.NotNil(t, body.NextCursor)
	assert.Equal(t, 20, body.NextCursor.Position)

	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListExpenses_InvalidCursorTime(t *testing.T) {
	mockSvc := new(mockExpenseLister)

	api := newListTestAPI(t, mockSvc)
	resp := api.Post("/expenses/list", map[string]any{
		"cursor": map[string]any{
			"position":        0,
			"limit":           20,
			"maxCreationTime": "yesterday",
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListExpenses")
}
