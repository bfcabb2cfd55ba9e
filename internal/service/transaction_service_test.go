package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func newTestService(t *testing.T, processor *fakeProcessor) (*TransactionService, *sqlconfig.MockITransactionTable) {
	t.Helper()
	store, tables := newMockStorage(t)
	svc := NewTransactionService(store, processor, fixedCalendar(2025, time.June, 10))
	return svc, tables.transactions
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	expectedID := uuid.Must(uuid.NewV4())
	processor := &fakeProcessor{perform: func(action actions.IAction) {
		action.(*actions.CreateTransaction).CreatedID = expectedID
	}}
	svc, _ := newTestService(t, processor)

	userID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("42.50")
	txDate := date(2025, time.June, 1)

	id, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID:          userID,
		Kind:            sqlconfig.TransactionKindExpense,
		Amount:          amount,
		Category:        "Food",
		Description:     "Groceries",
		TransactionDate: txDate,
	})

	require.NoError(t, err)
	assert.Equal(t, expectedID, id)

	require.Len(t, processor.processed, 1)
	action := processor.processed[0].(*actions.CreateTransaction)
	assert.Equal(t, userID, action.UserID)
	assert.Equal(t, sqlconfig.TransactionKindExpense, action.Kind)
	assert.True(t, action.Amount.Equal(amount))
	assert.Equal(t, "Food", action.Category)
	assert.Equal(t, "Groceries", action.Description)
	assert.Equal(t, txDate, action.TransactionDate)
}

func TestCreateTransaction_DefaultsToToday(t *testing.T) {
	processor := &fakeProcessor{}
	svc, _ := newTestService(t, processor)

	_, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID: uuid.Must(uuid.NewV4()),
		Kind:   sqlconfig.TransactionKindIncome,
		Amount: decimal.NewFromInt(10),
	})

	require.NoError(t, err)
	action := processor.processed[0].(*actions.CreateTransaction)
	assert.Equal(t, date(2025, time.June, 10), action.TransactionDate)
}

func TestCreateTransaction_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
	}{
		{name: "unknown kind", transaction: Transaction{Kind: "transfer", Amount: decimal.NewFromInt(1)}},
		{name: "negative amount", transaction: Transaction{Kind: sqlconfig.TransactionKindExpense, Amount: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := &fakeProcessor{}
			svc, _ := newTestService(t, processor)

			id, err := svc.CreateTransaction(context.Background(), tt.transaction)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Equal(t, uuid.Nil, id)
			assert.Empty(t, processor.processed)
		})
	}
}

func TestCreateTransaction_UserNotFound(t *testing.T) {
	svc, _ := newTestService(t, &fakeProcessor{err: actions.ErrUserNotFound})

	userID := uuid.Must(uuid.NewV4())
	_, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID: userID,
		Kind:   sqlconfig.TransactionKindExpense,
		Amount: decimal.NewFromInt(1),
	})

	assert.ErrorIs(t, err, ErrNotFound)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, userID, notFound.ID)
}

func TestCreateTransaction_OperatorError(t *testing.T) {
	svc, _ := newTestService(t, &fakeProcessor{err: errors.New("connection refused")})

	id, err := svc.CreateTransaction(context.Background(), Transaction{
		UserID: uuid.Must(uuid.NewV4()),
		Kind:   sqlconfig.TransactionKindExpense,
		Amount: decimal.RequireFromString("10.00"),
	})

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, uuid.Nil, id)
}

// -- ListTransactions tests --

func makeStorageRows(n int, createdAt time.Time) []*sqlconfig.Transaction {
	rows := make([]*sqlconfig.Transaction, n)
	for i := range rows {
		rows[i] = &sqlconfig.Transaction{
			ID:              uuid.Must(uuid.NewV4()),
			UserID:          uuid.Must(uuid.NewV4()),
			Kind:            sqlconfig.TransactionKindExpense,
			Amount:          decimal.RequireFromString("5.00"),
			Category:        "Food",
			Description:     "Item",
			TransactionDate: createdAt,
			CreatedAt:       createdAt,
		}
	}
	return rows
}

func TestListTransactions_NoResults(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return([]*sqlconfig.Transaction{}, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionListFilter{}, nil)

	assert.NoError(t, err)
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}

func TestListTransactions_SinglePage(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(2, now)
	userID := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.UserID == userID && f.Limit == defaultLimit && f.Offset == 0 && f.MaxCreationTime == nil
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionListFilter{UserID: userID}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Nil(t, nextCursor)

	tx := txs[0]
	assert.Equal(t, rows[0].ID, tx.ID)
	assert.Equal(t, rows[0].UserID, tx.UserID)
	assert.Equal(t, rows[0].Kind, tx.Kind)
	assert.True(t, rows[0].Amount.Equal(tx.Amount))
	assert.Equal(t, rows[0].Category, tx.Category)
	assert.Equal(t, rows[0].Description, tx.Description)
	assert.Equal(t, rows[0].TransactionDate, tx.TransactionDate)
	assert.Equal(t, rows[0].CreatedAt, tx.CreatedAt)
}

func TestListTransactions_PassesFilters(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	kind := sqlconfig.TransactionKindIncome
	from := date(2025, time.May, 1)
	to := date(2025, time.May, 31)

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return *f.Kind == kind &&
			*f.Category == "Salary" &&
			f.DateFrom.Equal(from) &&
			f.DateTo.Equal(to)
	})).Return(nil, nil)

	_, _, err := svc.ListTransactions(context.Background(), TransactionListFilter{
		Kind:     &kind,
		Category: ptr("Salary"),
		DateFrom: &from,
		DateTo:   &to,
	}, nil)

	assert.NoError(t, err)
}

func TestListTransactions_HasNextPage(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	rows := makeStorageRows(defaultLimit+1, now)

	mockTable.EXPECT().List(mock.Anything, mock.Anything).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionListFilter{}, nil)

	assert.NoError(t, err)
	assert.Len(t, txs, defaultLimit, "truncated to default limit")

	assert.NotNil(t, nextCursor)
	assert.Equal(t, defaultLimit, nextCursor.Position)
	assert.Equal(t, defaultLimit, nextCursor.Limit)
	assert.Equal(t, now, nextCursor.MaxCreationTime, "derived from first row")
}

func TestListTransactions_WithCursor(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	cursorTime := time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)
	rowTime := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	rows := makeStorageRows(3, rowTime) // limit=2, returns 3 → has next page

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == 2 &&
			f.Offset == 20 &&
			f.MaxCreationTime != nil &&
			f.MaxCreationTime.Equal(cursorTime)
	})).Return(rows, nil)

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionListFilter{}, &TransactionCursor{
		Position:        20,
		Limit:           2,
		MaxCreationTime: cursorTime,
	})

	assert.NoError(t, err)
	assert.Len(t, txs, 2)

	assert.NotNil(t, nextCursor)
	assert.Equal(t, 22, nextCursor.Position)
	assert.Equal(t, 2, nextCursor.Limit)
	assert.Equal(t, cursorTime, nextCursor.MaxCreationTime, "echoed from cursor, not overridden by row data")
}

func TestListTransactions_CursorLimitClamped(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	mockTable.EXPECT().List(mock.Anything, mock.MatchedBy(func(f *sqlconfig.TransactionFilter) bool {
		return f.Limit == maxLimit
	})).Return(nil, nil)

	_, _, err := svc.ListTransactions(context.Background(), TransactionListFilter{}, &TransactionCursor{Limit: 10000})

	assert.NoError(t, err)
}

func TestListTransactions_StorageError(t *testing.T) {
	svc, mockTable := newTestService(t, &fakeProcessor{})

	mockTable.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	txs, nextCursor, err := svc.ListTransactions(context.Background(), TransactionListFilter{}, nil)

	assert.Error(t, err)
	assert.Equal(t, "database unavailable", err.Error())
	assert.Nil(t, txs)
	assert.Nil(t, nextCursor)
}
