package service

import (
	"context"
	"testing"
	"time"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type fakeProcessor struct {
	err       error
	processed []actions.IAction
	perform   func(action actions.IAction)
}

func (f *fakeProcessor) Process(ctx context.Context, action actions.IAction) error {
	f.processed = append(f.processed, action)
	if f.err != nil {
		return f.err
	}
	if f.perform != nil {
		f.perform(action)
	}
	return nil
}

type mockTables struct {
	users        *sqlconfig.MockIUserTable
	transactions *sqlconfig.MockITransactionTable
	settings     *sqlconfig.MockISettingsTable
}

func newMockStorage(t *testing.T) (*storage.Storage, mockTables) {
	t.Helper()
	tables := mockTables{
		users:        sqlconfig.NewMockIUserTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		settings:     sqlconfig.NewMockISettingsTable(t),
	}
	store := &storage.Storage{
		Users:        tables.users,
		Transactions: tables.transactions,
		Settings:     tables.settings,
	}
	return store, tables
}

// fixedCalendar pins "now" to the given civil date at midday UTC.
func fixedCalendar(year int, month time.Month, day int) *Calendar {
	now := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	return NewCalendar(time.UTC, func() time.Time { return now })
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// sumFilterFor matches a SumFilter by kind and inclusive date bounds. Nil bounds must be nil.
func sumFilterFor(kind sqlconfig.TransactionKind, from, to *time.Time) func(*sqlconfig.SumFilter) bool {
	return func(f *sqlconfig.SumFilter) bool {
		return f.Kind == kind &&
			f.Category == nil &&
			sameDate(f.DateFrom, from) &&
			sameDate(f.DateTo, to)
	}
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func ptr[T any](v T) *T {
	return &v
}
