package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Kind            sqlconfig.TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// TransactionListFilter narrows a listing. UserID is required.
type TransactionListFilter struct {
	UserID   uuid.UUID
	Kind     *sqlconfig.TransactionKind
	Category *string
	DateFrom *time.Time
	DateTo   *time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}
