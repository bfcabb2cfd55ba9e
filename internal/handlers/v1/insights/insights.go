package insights

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/common"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

type DailyLimit struct {
	Limit             string `json:"limit" doc:"Available money divided by the days in the month"`
	Remaining         string `json:"remaining" doc:"What can still be spent per day for the rest of the month"`
	RemainingForMonth string `json:"remainingForMonth"`
	DaysRemaining     int    `json:"daysRemaining" doc:"Days left including today"`
	DaysInMonth       int    `json:"daysInMonth"`
	CurrentDay        int    `json:"currentDay"`
}

type Forecast struct {
	ProjectedBalance  string `json:"projectedBalance"`
	ProjectedSpending string `json:"projectedSpending"`
	SpentSoFar        string `json:"spentSoFar"`
	AvgDailySpend     string `json:"avgDailySpend"`
	WorstCaseBalance  string `json:"worstCaseBalance" doc:"Balance if spending runs 20% above the current pace"`
	Scenario          string `json:"scenario" enum:"positive,warning,negative"`
}

type Overspend struct {
	Category  string `json:"category"`
	Spent     string `json:"spent"`
	Budget    string `json:"budget"`
	Remaining string `json:"remaining" doc:"Negative once the budget is exceeded"`
	Percent   string `json:"percent"`
	Status    string `json:"status" enum:"warning,over"`
}

type TopDay struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

type TopCategory struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

type TopSpending struct {
	Day      *TopDay      `json:"day,omitempty" doc:"Absent when there are no expenses this month"`
	Category *TopCategory `json:"category,omitempty" doc:"Absent when there are no expenses this month"`
}

type Savings struct {
	Category   string `json:"category"`
	Current    string `json:"current" doc:"Spent in the category this month"`
	IfReduce10 string `json:"ifReduce10" doc:"Saved by cutting the category by 10%"`
	IfReduce20 string `json:"ifReduce20" doc:"Saved by cutting the category by 20%"`
}

type Recurring struct {
	Category string `json:"category"`
	Amount   string `json:"amount" doc:"Typical amount, rounded to the nearest thousand"`
	Count    int64  `json:"count"`
	Total    string `json:"total"`
}

type Response struct {
	DailyLimit   DailyLimit  `json:"dailyLimit"`
	Forecast     Forecast    `json:"forecast"`
	Overspending []Overspend `json:"overspending" doc:"Budgets at or above 80% usage, highest first"`
	Streak       int         `json:"streak" doc:"Consecutive days within the daily limit ending today"`
	TopSpending  TopSpending `json:"topSpending"`
	Savings      *Savings    `json:"savings,omitempty" doc:"Absent when there are no expenses this month"`
	Recurring    []Recurring `json:"recurring" doc:"Up to three expenses repeated at least three times this month"`
}

type GetInsightsInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
}

type GetInsightsOutput struct {
	Body Response
}

type insightComputer interface {
	ComputeInsights(ctx context.Context, userID uuid.UUID) (*service.Insights, error)
}

// Handler handles GET /v1/insights/{userID}.
type Handler struct {
	InsightService insightComputer
}

func NewHandler(svc insightComputer) *Handler {
	return &Handler{InsightService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-insights",
		Method:      http.MethodGet,
		Path:        "/v1/insights/{userID}",
		Summary:     "Get insights",
		Description: "Daily allowance, month-end forecast, overspending alerts, streak and top spending for the current month.",
		Tags:        []string{"Insights"},
	}, h.handle)
}

func (h *Handler) handle(ctx context.Context, input *GetInsightsInput) (*GetInsightsOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		logData.AddData("userID", userID.String())
		stopTimer = logData.AddTiming("computeInsightsMs")
	}
	result, err := h.InsightService.ComputeInsights(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError(err, "failed to compute insights")
	}

	if logData != nil {
		logData.AddData("scenario", string(result.Forecast.Scenario))
	}

	return &GetInsightsOutput{Body: NewResponse(result)}, nil
}

// NewResponse converts insights into the wire model.
func NewResponse(in *service.Insights) Response {
	overspending := make([]Overspend, len(in.Overspending))
	for i, o := range in.Overspending {
		overspending[i] = Overspend{
			Category:  o.Category,
			Spent:     common.Amount(o.Spent),
			Budget:    common.Amount(o.Budget),
			Remaining: common.Amount(o.Remaining),
			Percent:   common.Percent(o.Percent),
			Status:    string(o.Status),
		}
	}

	var top TopSpending
	if in.TopSpending.Day != nil {
		top.Day = &TopDay{
			Date:   common.Date(in.TopSpending.Day.Date),
			Amount: common.Amount(in.TopSpending.Day.Amount),
		}
	}
	if in.TopSpending.Category != nil {
		top.Category = &TopCategory{
			Category: in.TopSpending.Category.Category,
			Amount:   common.Amount(in.TopSpending.Category.Amount),
		}
	}

	var savings *Savings
	if in.Savings != nil {
		savings = &Savings{
			Category:   in.Savings.Category,
			Current:    common.Amount(in.Savings.Current),
			IfReduce10: common.Amount(in.Savings.IfReduce10),
			IfReduce20: common.Amount(in.Savings.IfReduce20),
		}
	}

	recurring := make([]Recurring, len(in.Recurring))
	for i, r := range in.Recurring {
		recurring[i] = Recurring{
			Category: r.Category,
			Amount:   common.Amount(r.Amount),
			Count:    r.Count,
			Total:    common.Amount(r.Total),
		}
	}

	return Response{
		DailyLimit: DailyLimit{
			Limit:             common.Amount(in.DailyLimit.Limit),
			Remaining:         common.Amount(in.DailyLimit.Remaining),
			RemainingForMonth: common.Amount(in.DailyLimit.RemainingForMonth),
			DaysRemaining:     in.DailyLimit.DaysRemaining,
			DaysInMonth:       in.DailyLimit.DaysInMonth,
			CurrentDay:        in.DailyLimit.CurrentDay,
		},
		Forecast: Forecast{
			ProjectedBalance:  common.Amount(in.Forecast.ProjectedBalance),
			ProjectedSpending: common.Amount(in.Forecast.ProjectedSpending),
			SpentSoFar:        common.Amount(in.Forecast.SpentSoFar),
			AvgDailySpend:     common.Amount(in.Forecast.AvgDailySpend),
			WorstCaseBalance:  common.Amount(in.Forecast.WorstCaseBalance),
			Scenario:          string(in.Forecast.Scenario),
		},
		Overspending: overspending,
		Streak:       in.Streak,
		TopSpending:  top,
		Savings:      savings,
		Recurring:    recurring,
	}
}
