package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// TransactionKind is either an expense or an income.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	return k == TransactionKindExpense || k == TransactionKindIncome
}

// Transaction represents a transaction record.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Kind            TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID          uuid.UUID
	Kind            TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time // defaults to today if zero
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	UserID          uuid.UUID
	Kind            *TransactionKind
	Category        *string
	DateFrom        *time.Time
	DateTo          *time.Time
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// SumFilter narrows an aggregate over one user's ledger. Nil fields are unbounded.
// Date bounds are inclusive calendar dates.
type SumFilter struct {
	UserID   uuid.UUID
	Kind     TransactionKind
	Category *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// CategoryTotal is one group of a per-category aggregate.
type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
	Count    int64           `db:"count"`
}

// DailyTotal holds one calendar day's expense and income sums.
type DailyTotal struct {
	Day      time.Time       `db:"day"`
	Expenses decimal.Decimal `db:"expenses"`
	Incomes  decimal.Decimal `db:"incomes"`
}

// RecurringGroup is a set of same-category expenses whose amounts round to the same thousand.
type RecurringGroup struct {
	Category string          `db:"category"`
	Amount   decimal.Decimal `db:"amount"`
	Count    int64           `db:"count"`
	Total    decimal.Decimal `db:"total"`
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Sum(ctx context.Context, filter *SumFilter) (decimal.Decimal, error)
	GroupByCategory(ctx context.Context, filter *SumFilter) ([]*CategoryTotal, error)
	// DailyTotals returns only the days in [from, to] that have transactions, oldest first.
	DailyTotals(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]*DailyTotal, error)
	Recurring(ctx context.Context, filter *SumFilter, minCount int, limit int) ([]*RecurringGroup, error)
}
