package service

import (
	"time"

	"github.com/shopspring/decimal"
)

type TrendDirection string

const (
	TrendUp   TrendDirection = "up"
	TrendDown TrendDirection = "down"
	TrendSame TrendDirection = "same"
)

// Analytics is the aggregate view of one user's ledger. Amounts are exact;
// rounding happens when the result is presented.
type Analytics struct {
	Period      Period
	Summary     AnalyticsSummary
	Categories  []CategoryBreakdown
	DailySeries []DailyPoint
	Trend       MonthTrend
}

type AnalyticsSummary struct {
	TotalExpenses   decimal.Decimal
	TotalIncomes    decimal.Decimal
	Balance         decimal.Decimal
	AvgDailyExpense decimal.Decimal
}

type CategoryBreakdown struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}

type DailyPoint struct {
	Date     time.Time
	Expenses decimal.Decimal
	Incomes  decimal.Decimal
}

// MonthTrend compares this month's spending so far with the whole previous month.
type MonthTrend struct {
	CurrentMonthTotal  decimal.Decimal
	PreviousMonthTotal decimal.Decimal
	Difference         decimal.Decimal
	PercentChange      decimal.Decimal
	Direction          TrendDirection
}
