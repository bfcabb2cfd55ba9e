package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period selects the window analytics are aggregated over.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodMonth Period = "month"
	PeriodWeek  Period = "week"
)

// ParsePeriod maps unknown tokens to PeriodAll instead of failing.
func ParsePeriod(raw string) Period {
	switch Period(raw) {
	case PeriodMonth, PeriodWeek:
		return Period(raw)
	default:
		return PeriodAll
	}
}

const (
	dailySeriesDays   = 30
	allPeriodDivisor  = 30
	overspendPercent  = 80
	overBudgetPercent = 100
	recurringMinCount = 3
	recurringLimit    = 3
)

var (
	hundred            = decimal.NewFromInt(100)
	worstCaseSpendRate = decimal.RequireFromString("1.2")
	savingsRate10      = decimal.RequireFromString("0.1")
	savingsRate20      = decimal.RequireFromString("0.2")
)

// Calendar turns the wall clock into civil dates in one time zone.
// Dates it returns are midnight UTC so they compare and format without zone drift.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

func (c *Calendar) Today() time.Time {
	y, m, d := c.now().In(c.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func startOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(day time.Time) int {
	return time.Date(day.Year(), day.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// previousMonthRange returns the first and last day of the month before day.
func previousMonthRange(day time.Time) (time.Time, time.Time) {
	last := startOfMonth(day).AddDate(0, 0, -1)
	return startOfMonth(last), last
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// dateWindow is an inclusive date range. Nil bounds are open.
type dateWindow struct {
	from        *time.Time
	to          *time.Time
	elapsedDays int
}

func resolveWindow(period Period, today time.Time) dateWindow {
	var from time.Time
	switch period {
	case PeriodMonth:
		from = startOfMonth(today)
	case PeriodWeek:
		from = today.AddDate(0, 0, -7)
	default:
		return dateWindow{elapsedDays: allPeriodDivisor}
	}

	to := today
	return dateWindow{
		from:        &from,
		to:          &to,
		elapsedDays: max(1, daysBetween(from, today)),
	}
}

// divOrZero returns zero instead of dividing by a non-positive denominator.
func divOrZero(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den)
}

func percentOf(part, whole decimal.Decimal) decimal.Decimal {
	return divOrZero(part.Mul(hundred), whole)
}

func dateKey(day time.Time) string {
	return day.Format(time.DateOnly)
}
