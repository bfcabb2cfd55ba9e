package service

import (
	"context"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// InsightService derives daily limits, a month-end forecast and budget alerts
// from the current month's ledger and the user's settings.
type InsightService struct {
	storage           *storage.Storage
	calendar          *Calendar
	negativeThreshold decimal.Decimal
}

func NewInsightService(store *storage.Storage, calendar *Calendar, negativeThreshold decimal.Decimal) *InsightService {
	return &InsightService{
		storage:           store,
		calendar:          calendar,
		negativeThreshold: negativeThreshold,
	}
}

func (s *InsightService) ComputeInsights(ctx context.Context, userID uuid.UUID) (*Insights, error) {
	exists, err := s.storage.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Entity: "user", ID: userID}
	}

	settings, err := s.storage.Settings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, &NotFoundError{Entity: "settings", ID: userID}
	}

	today := s.calendar.Today()
	monthStart := startOfMonth(today)
	monthFilter := func() *sqlconfig.SumFilter {
		return &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindExpense,
			DateFrom: &monthStart,
			DateTo:   &today,
		}
	}

	var (
		spentSoFar  decimal.Decimal
		byCategory  []*sqlconfig.CategoryTotal
		dailyTotals []*sqlconfig.DailyTotal
		recurring   []*sqlconfig.RecurringGroup
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		spentSoFar, err = s.storage.Transactions.Sum(gctx, monthFilter())
		return err
	})
	g.Go(func() error {
		var err error
		byCategory, err = s.storage.Transactions.GroupByCategory(gctx, monthFilter())
		return err
	})
	g.Go(func() error {
		var err error
		dailyTotals, err = s.storage.Transactions.DailyTotals(gctx, userID, monthStart, today)
		return err
	})
	g.Go(func() error {
		var err error
		recurring, err = s.storage.Transactions.Recurring(gctx, monthFilter(), recurringMinCount, recurringLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	available := settings.MonthlyIncome.Sub(settings.FixedExpenses)
	dailyLimit := computeDailyLimit(available, spentSoFar, today)
	top := topSpending(dailyTotals, byCategory)

	return &Insights{
		DailyLimit:   dailyLimit,
		Forecast:     s.forecast(available, spentSoFar, dailyLimit),
		Overspending: overspending(settings.Budgets, byCategory),
		Streak:       streak(dailyTotals, dailyLimit.Limit, monthStart, today),
		TopSpending:  top,
		Savings:      savings(top.Category),
		Recurring:    recurringExpenses(recurring),
	}, nil
}

func computeDailyLimit(available, spentSoFar decimal.Decimal, today time.Time) DailyLimit {
	monthDays := daysInMonth(today)
	currentDay := today.Day()
	daysRemaining := monthDays - currentDay + 1
	remainingForMonth := available.Sub(spentSoFar)

	return DailyLimit{
		Limit:             divOrZero(available, decimal.NewFromInt(int64(monthDays))),
		Remaining:         divOrZero(remainingForMonth, decimal.NewFromInt(int64(daysRemaining))),
		RemainingForMonth: remainingForMonth,
		DaysRemaining:     daysRemaining,
		DaysInMonth:       monthDays,
		CurrentDay:        currentDay,
	}
}

// forecast extrapolates the average daily spend so far over the days left.
func (s *InsightService) forecast(available, spentSoFar decimal.Decimal, limit DailyLimit) Forecast {
	avgDailySpend := divOrZero(spentSoFar, decimal.NewFromInt(int64(limit.CurrentDay)))
	projectedSpending := spentSoFar.Add(avgDailySpend.Mul(decimal.NewFromInt(int64(limit.DaysRemaining))))
	projectedBalance := available.Sub(projectedSpending)

	scenario := ScenarioWarning
	switch {
	case projectedBalance.IsPositive():
		scenario = ScenarioPositive
	case projectedBalance.LessThan(s.negativeThreshold.Neg()):
		scenario = ScenarioNegative
	}

	return Forecast{
		ProjectedBalance:  projectedBalance,
		ProjectedSpending: projectedSpending,
		SpentSoFar:        spentSoFar,
		AvgDailySpend:     avgDailySpend,
		WorstCaseBalance:  available.Sub(projectedSpending.Mul(worstCaseSpendRate)),
		Scenario:          scenario,
	}
}

// overspending lists budgets at or above the warning percentage, highest first.
// Budgets with a non-positive limit are skipped.
func overspending(budgets []sqlconfig.BudgetLimit, byCategory []*sqlconfig.CategoryTotal) []OverspendEntry {
	spentByCategory := make(map[string]decimal.Decimal, len(byCategory))
	for _, row := range byCategory {
		spentByCategory[row.Category] = row.Total
	}

	warnAt := decimal.NewFromInt(overspendPercent)
	overAt := decimal.NewFromInt(overBudgetPercent)

	entries := make([]OverspendEntry, 0)
	for _, budget := range budgets {
		if !budget.Limit.IsPositive() {
			continue
		}

		spent, ok := spentByCategory[budget.Category]
		if !ok {
			spent = decimal.Zero
		}
		// spent*100 against limit*percent, exact
		scaledSpent := spent.Mul(hundred)
		if scaledSpent.LessThan(budget.Limit.Mul(warnAt)) {
			continue
		}

		status := OverspendWarning
		if scaledSpent.GreaterThanOrEqual(budget.Limit.Mul(overAt)) {
			status = OverspendOver
		}
		entries = append(entries, OverspendEntry{
			Category:  budget.Category,
			Spent:     spent,
			Budget:    budget.Limit,
			Remaining: budget.Limit.Sub(spent),
			Percent:   percentOf(spent, budget.Limit),
			Status:    status,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].Percent.Cmp(entries[j].Percent); c != 0 {
			return c > 0
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// streak counts consecutive days ending today, not earlier than monthStart,
// whose expenses stay within max(0, limit).
func streak(dailyTotals []*sqlconfig.DailyTotal, limit decimal.Decimal, monthStart, today time.Time) int {
	if limit.IsNegative() {
		limit = decimal.Zero
	}

	spentByDay := make(map[string]decimal.Decimal, len(dailyTotals))
	for _, row := range dailyTotals {
		spentByDay[dateKey(row.Day)] = row.Expenses
	}

	count := 0
	for day := today; !day.Before(monthStart); day = day.AddDate(0, 0, -1) {
		if spent, ok := spentByDay[dateKey(day)]; ok && spent.GreaterThan(limit) {
			break
		}
		count++
	}
	return count
}

func topSpending(dailyTotals []*sqlconfig.DailyTotal, byCategory []*sqlconfig.CategoryTotal) TopSpending {
	var top TopSpending

	for _, row := range dailyTotals {
		if !row.Expenses.IsPositive() {
			continue
		}
		if top.Day == nil ||
			row.Expenses.GreaterThan(top.Day.Amount) ||
			(row.Expenses.Equal(top.Day.Amount) && row.Day.Before(top.Day.Date)) {
			top.Day = &DaySpend{Date: row.Day, Amount: row.Expenses}
		}
	}

	if categories := categoryBreakdown(byCategory); len(categories) > 0 && categories[0].Total.IsPositive() {
		top.Category = &CategorySpend{Category: categories[0].Category, Amount: categories[0].Total}
	}
	return top
}

func savings(top *CategorySpend) *SavingsOpportunity {
	if top == nil {
		return nil
	}
	return &SavingsOpportunity{
		Category:   top.Category,
		Current:    top.Amount,
		IfReduce10: top.Amount.Mul(savingsRate10),
		IfReduce20: top.Amount.Mul(savingsRate20),
	}
}

func recurringExpenses(rows []*sqlconfig.RecurringGroup) []RecurringExpense {
	result := make([]RecurringExpense, len(rows))
	for i, row := range rows {
		result[i] = RecurringExpense{
			Category: row.Category,
			Amount:   row.Amount,
			Count:    row.Count,
			Total:    row.Total,
		}
	}
	return result
}
