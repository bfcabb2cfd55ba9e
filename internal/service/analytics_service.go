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

// AnalyticsService aggregates a user's ledger into totals, categories, a daily series and a monthly trend.
type AnalyticsService struct {
	storage  *storage.Storage
	calendar *Calendar
}

func NewAnalyticsService(store *storage.Storage, calendar *Calendar) *AnalyticsService {
	return &AnalyticsService{storage: store, calendar: calendar}
}

// ComputeAnalytics is read-only. The first failed read is returned as is.
func (s *AnalyticsService) ComputeAnalytics(ctx context.Context, userID uuid.UUID, period Period) (*Analytics, error) {
	period = ParsePeriod(string(period))

	exists, err := s.storage.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &NotFoundError{Entity: "user", ID: userID}
	}

	today := s.calendar.Today()
	window := resolveWindow(period, today)
	monthStart := startOfMonth(today)
	prevFrom, prevTo := previousMonthRange(today)
	seriesFrom := today.AddDate(0, 0, -(dailySeriesDays - 1))

	var (
		totalExpenses decimal.Decimal
		totalIncomes  decimal.Decimal
		currentMonth  decimal.Decimal
		previousMonth decimal.Decimal
		categories    []*sqlconfig.CategoryTotal
		dailyTotals   []*sqlconfig.DailyTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalExpenses, err = s.storage.Transactions.Sum(gctx, &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindExpense,
			DateFrom: window.from,
			DateTo:   window.to,
		})
		return err
	})
	g.Go(func() error {
		var err error
		totalIncomes, err = s.storage.Transactions.Sum(gctx, &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindIncome,
			DateFrom: window.from,
			DateTo:   window.to,
		})
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.storage.Transactions.GroupByCategory(gctx, &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindExpense,
			DateFrom: window.from,
			DateTo:   window.to,
		})
		return err
	})
	g.Go(func() error {
		var err error
		dailyTotals, err = s.storage.Transactions.DailyTotals(gctx, userID, seriesFrom, today)
		return err
	})
	g.Go(func() error {
		var err error
		currentMonth, err = s.storage.Transactions.Sum(gctx, &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindExpense,
			DateFrom: &monthStart,
			DateTo:   &today,
		})
		return err
	})
	g.Go(func() error {
		var err error
		previousMonth, err = s.storage.Transactions.Sum(gctx, &sqlconfig.SumFilter{
			UserID:   userID,
			Kind:     sqlconfig.TransactionKindExpense,
			DateFrom: &prevFrom,
			DateTo:   &prevTo,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Analytics{
		Period: period,
		Summary: AnalyticsSummary{
			TotalExpenses:   totalExpenses,
			TotalIncomes:    totalIncomes,
			Balance:         totalIncomes.Sub(totalExpenses),
			AvgDailyExpense: divOrZero(totalExpenses, decimal.NewFromInt(int64(window.elapsedDays))),
		},
		Categories:  categoryBreakdown(categories),
		DailySeries: dailySeries(dailyTotals, seriesFrom),
		Trend:       monthTrend(currentMonth, previousMonth),
	}, nil
}

// categoryBreakdown orders by total descending, then label ascending.
func categoryBreakdown(rows []*sqlconfig.CategoryTotal) []CategoryBreakdown {
	result := make([]CategoryBreakdown, 0, len(rows))
	for _, row := range rows {
		result = append(result, CategoryBreakdown{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Total.Cmp(result[j].Total); c != 0 {
			return c > 0
		}
		return result[i].Category < result[j].Category
	})
	return result
}

// dailySeries always yields dailySeriesDays points starting at from. Days without rows are zero.
func dailySeries(rows []*sqlconfig.DailyTotal, from time.Time) []DailyPoint {
	byDay := make(map[string]*sqlconfig.DailyTotal, len(rows))
	for _, row := range rows {
		byDay[dateKey(row.Day)] = row
	}

	series := make([]DailyPoint, dailySeriesDays)
	for i := range series {
		day := from.AddDate(0, 0, i)
		point := DailyPoint{Date: day, Expenses: decimal.Zero, Incomes: decimal.Zero}
		if row, ok := byDay[dateKey(day)]; ok {
			point.Expenses = row.Expenses
			point.Incomes = row.Incomes
		}
		series[i] = point
	}
	return series
}

func monthTrend(current, previous decimal.Decimal) MonthTrend {
	difference := current.Sub(previous)

	direction := TrendSame
	switch difference.Sign() {
	case 1:
		direction = TrendUp
	case -1:
		direction = TrendDown
	}

	return MonthTrend{
		CurrentMonthTotal:  current,
		PreviousMonthTotal: previous,
		Difference:         difference,
		PercentChange:      percentOf(difference, previous),
		Direction:          direction,
	}
}
