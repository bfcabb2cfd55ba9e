package analytics

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/common"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

type Summary struct {
	TotalExpenses   string `json:"totalExpenses"`
	TotalIncomes    string `json:"totalIncomes"`
	Balance         string `json:"balance" doc:"totalIncomes minus totalExpenses"`
	AvgDailyExpense string `json:"avgDailyExpense"`
}

type Category struct {
	Category string `json:"category" doc:"Category label, empty for uncategorized"`
	Total    string `json:"total"`
	Count    int64  `json:"count"`
}

type DailyPoint struct {
	Date     string `json:"date" doc:"YYYY-MM-DD"`
	Expenses string `json:"expenses"`
	Incomes  string `json:"incomes"`
}

type Trend struct {
	CurrentMonth  string `json:"currentMonth" doc:"Expenses from the 1st of this month through today"`
	PreviousMonth string `json:"previousMonth" doc:"Expenses over the whole previous month"`
	Difference    string `json:"difference"`
	PercentChange string `json:"percentChange" doc:"Zero when the previous month had no expenses"`
	Direction     string `json:"direction" enum:"up,down,same"`
}

type Response struct {
	Period      string       `json:"period" enum:"all,month,week"`
	Summary     Summary      `json:"summary"`
	Categories  []Category   `json:"categories" doc:"Expense totals by category, largest first"`
	DailySeries []DailyPoint `json:"dailySeries" doc:"The last 30 days, oldest first"`
	Trend       Trend        `json:"trend"`
}

type GetAnalyticsInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
	Period string `query:"period" default:"all" doc:"all, month or week. Unknown values are treated as all."`
}

type GetAnalyticsOutput struct {
	Body Response
}

type analyticsComputer interface {
	ComputeAnalytics(ctx context.Context, userID uuid.UUID, period service.Period) (*service.Analytics, error)
}

// Handler handles GET /v1/analytics/{userID}.
type Handler struct {
	AnalyticsService analyticsComputer
}

func NewHandler(svc analyticsComputer) *Handler {
	return &Handler{AnalyticsService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-analytics",
		Method:      http.MethodGet,
		Path:        "/v1/analytics/{userID}",
		Summary:     "Get analytics",
		Description: "Totals, category breakdown, a 30-day series and the month-over-month trend.",
		Tags:        []string{"Analytics"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	period := service.ParsePeriod(input.Period)

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("userID", userID.String())
		logData.AddData("period", string(period))
		stopTimer = logData.AddTiming("computeAnalyticsMs")
	}
	result, err := h.AnalyticsService.ComputeAnalytics(ctx, userID, period)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError(err, "failed to compute analytics")
	}

	return &GetAnalyticsOutput{Body: NewResponse(result)}, nil
}

// NewResponse renders amounts and percents as two-decimal strings.
func NewResponse(a *service.Analytics) Response {
	categories := make([]Category, len(a.Categories))
	for i, c := range a.Categories {
		categories[i] = Category{Category: c.Category, Total: common.Amount(c.Total), Count: c.Count}
	}

	series := make([]DailyPoint, len(a.DailySeries))
	for i, p := range a.DailySeries {
		series[i] = DailyPoint{
			Date:     common.Date(p.Date),
			Expenses: common.Amount(p.Expenses),
			Incomes:  common.Amount(p.Incomes),
		}
	}

	return Response{
		Period: string(a.Period),
		Summary: Summary{
			TotalExpenses:   common.Amount(a.Summary.TotalExpenses),
			TotalIncomes:    common.Amount(a.Summary.TotalIncomes),
			Balance:         common.Amount(a.Summary.Balance),
			AvgDailyExpense: common.Amount(a.Summary.AvgDailyExpense),
		},
		Categories:  categories,
		DailySeries: series,
		Trend: Trend{
			CurrentMonth:  common.Amount(a.Trend.CurrentMonthTotal),
			PreviousMonth: common.Amount(a.Trend.PreviousMonthTotal),
			Difference:    common.Amount(a.Trend.Difference),
			PercentChange: common.Percent(a.Trend.PercentChange),
			Direction:     string(a.Trend.Direction),
		},
	}
}
