package service

import (
	"time"

	"github.com/shopspring/decimal"
)

type ForecastScenario string

const (
	ScenarioPositive ForecastScenario = "positive"
	ScenarioWarning  ForecastScenario = "warning"
	ScenarioNegative ForecastScenario = "negative"
)

type OverspendStatus string

const (
	OverspendWarning OverspendStatus = "warning"
	OverspendOver    OverspendStatus = "over"
)

// Insights is the current-month budget picture for one user.
type Insights struct {
	DailyLimit   DailyLimit
	Forecast     Forecast
	Overspending []OverspendEntry
	// Streak counts days back from today whose spending stayed within the daily limit.
	Streak      int
	TopSpending TopSpending
	// Savings is nil when there is no top category.
	Savings   *SavingsOpportunity
	Recurring []RecurringExpense
}

type DailyLimit struct {
	Limit             decimal.Decimal
	Remaining         decimal.Decimal
	RemainingForMonth decimal.Decimal
	DaysRemaining     int
	DaysInMonth       int
	CurrentDay        int
}

// Forecast is a linear run-rate projection to the end of the month.
type Forecast struct {
	ProjectedBalance  decimal.Decimal
	ProjectedSpending decimal.Decimal
	SpentSoFar        decimal.Decimal
	AvgDailySpend     decimal.Decimal
	WorstCaseBalance  decimal.Decimal
	Scenario          ForecastScenario
}

type OverspendEntry struct {
	Category  string
	Spent     decimal.Decimal
	Budget    decimal.Decimal
	Remaining decimal.Decimal
	Percent   decimal.Decimal
	Status    OverspendStatus
}

// TopSpending holds the month's largest day and category. Both are nil without expenses.
type TopSpending struct {
	Day      *DaySpend
	Category *CategorySpend
}

type DaySpend struct {
	Date   time.Time
	Amount decimal.Decimal
}

type CategorySpend struct {
	Category string
	Amount   decimal.Decimal
}

// SavingsOpportunity is what trimming the top category would save this month.
type SavingsOpportunity struct {
	Category   string
	Current    decimal.Decimal
	IfReduce10 decimal.Decimal
	IfReduce20 decimal.Decimal
}

// RecurringExpense is a repeated same-category expense of roughly the same amount.
type RecurringExpense struct {
	Category string
	Amount   decimal.Decimal
	Count    int64
	Total    decimal.Decimal
}
