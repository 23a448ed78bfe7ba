package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// SummaryEntry is one line of a monthly summary response.
type SummaryEntry struct {
	CategoryID   string `json:"categoryId" doc:"Category UUID"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
	Total        string `json:"total" doc:"Summed decimal amount for the month"`
}

// GetSummaryInput is the Huma input for the monthly summary.
type GetSummaryInput struct {
	Year   int    `path:"year" minimum:"1970" maximum:"9999" doc:"Calendar year"`
	Month  int    `path:"month" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
	UserID string `query:"userId" required:"true" minLength:"1" doc:"User identifier"`
}

// GetSummaryOutput is the Huma output for the monthly summary.
type GetSummaryOutput struct {
	Body []SummaryEntry
}

// summaryReader is the interface for reading monthly summaries.
type summaryReader interface {
	MonthlySummary(ctx context.Context, userID string, year int, month int) ([]service.CategorySummaryEntry, error)
}

// GetSummaryHandler handles GET /expenses/summary/{year}/{month}.
type GetSummaryHandler struct {
	ExpenseService summaryReader
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summaryReader) *GetSummaryHandler {
	return &GetSummaryHandler{ExpenseService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-summary",
		Method:      http.MethodGet,
		Path:        "/expenses/summary/{year}/{month}",
		Summary:     "Monthly category summary",
		Description: "Returns one user's per-category expense totals for a calendar month, ordered by total descending. Served from cache when possible.",
		Tags:        []string{"Expenses"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	entries, err := h.ExpenseService.MonthlySummary(ctx, input.UserID, input.Year, input.Month)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute monthly summary", err)
	}

	if logData != nil {
		logData.AddData("summaryEntryCount", len(entries))
	}

	// An empty month is a valid summary, not an error.
	body := make([]SummaryEntry, len(entries))
	for i, entry := range entries {
		body[i] = SummaryEntry{
			CategoryID:   entry.CategoryID,
			CategoryName: entry.CategoryName,
			Total:        entry.Total,
		}
	}

	return &GetSummaryOutput{Body: body}, nil
}
