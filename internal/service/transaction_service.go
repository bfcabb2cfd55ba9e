package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

const (
	defaultLimit = 20
	maxLimit     = 200
)

// actionProcessor runs a write action inside a storage transaction.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
	calendar *Calendar
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, operator actionProcessor, calendar *Calendar) *TransactionService {
	return &TransactionService{storage: store, operator: operator, calendar: calendar}
}

// CreateTransaction records a transaction and returns its ID. A zero date means today.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (uuid.UUID, error) {
	if !transaction.Kind.Valid() {
		return uuid.Nil, invalidInput("unknown transaction kind %q", transaction.Kind)
	}
	if transaction.Amount.IsNegative() {
		return uuid.Nil, invalidInput("amount must not be negative")
	}

	transactionDate := transaction.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = s.calendar.Today()
	}

	action := &actions.CreateTransaction{
		UserID:          transaction.UserID,
		Kind:            transaction.Kind,
		Amount:          transaction.Amount,
		Category:        transaction.Category,
		Description:     transaction.Description,
		TransactionDate: transactionDate,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrUserNotFound) {
			return uuid.Nil, &NotFoundError{Entity: "user", ID: transaction.UserID}
		}
		return uuid.Nil, err
	}

	return action.CreatedID, nil
}

// ListTransactions returns a page of a user's transactions using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, listFilter TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		limit = min(max(cursor.Limit, 1), maxLimit)
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
	}

	filter := &sqlconfig.TransactionFilter{
		UserID:          listFilter.UserID,
		Kind:            listFilter.Kind,
		Category:        listFilter.Category,
		DateFrom:        listFilter.DateFrom,
		DateTo:          listFilter.DateTo,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:              row.ID,
			UserID:          row.UserID,
			Kind:            row.Kind,
			Amount:          row.Amount,
			Category:        row.Category,
			Description:     row.Description,
			TransactionDate: row.TransactionDate,
			CreatedAt:       row.CreatedAt,
		}
	}

	return convertedTransactions, nextCursor, nil
}
