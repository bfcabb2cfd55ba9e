package actions

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

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func newTestWriter(t *testing.T) (*storage.Writer, *sqlconfig.MockIUserTable, *sqlconfig.MockITransactionTable, *sqlconfig.MockISettingsTable) {
	t.Helper()
	users := sqlconfig.NewMockIUserTable(t)
	transactions := sqlconfig.NewMockITransactionTable(t)
	settings := sqlconfig.NewMockISettingsTable(t)
	return &storage.Writer{Users: users, Transactions: transactions, Settings: settings}, users, transactions, settings
}

// -- CreateUser tests --

func TestCreateUser_CreatesDefaultSettings(t *testing.T) {
	writer, users, _, settings := newTestWriter(t)
	id := uuid.Must(uuid.NewV4())

	users.EXPECT().Insert(mock.Anything, &sqlconfig.UserCreate{Email: "a@b.c", Name: "Ann"}).Return(id, nil)
	settings.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(u *sqlconfig.SettingsUpsert) bool {
		return u.UserID == id &&
			u.MonthlyIncome.IsZero() &&
			u.FixedExpenses.IsZero() &&
			len(u.Budgets) == 0 &&
			!u.OnboardingCompleted
	})).Return(nil)

	action := &CreateUser{Email: "a@b.c", UserName: "Ann"}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, id, action.CreatedID)
}

func TestCreateUser_InsertError(t *testing.T) {
	writer, users, _, _ := newTestWriter(t)

	users.EXPECT().Insert(mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("duplicate email"))

	action := &CreateUser{Email: "a@b.c"}
	assert.EqualError(t, action.Perform(context.Background(), writer), "duplicate email")
	assert.Equal(t, uuid.Nil, action.CreatedID)
}

// -- CreateTransaction tests --

func TestCreateTransaction_Success(t *testing.T) {
	writer, users, transactions, _ := newTestWriter(t)

	userID := uuid.Must(uuid.NewV4())
	createdID := uuid.Must(uuid.NewV4())
	amount := decimal.RequireFromString("42.50")
	txDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	users.EXPECT().Exists(mock.Anything, userID).Return(true, nil)
	transactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.TransactionCreate) bool {
		return c.UserID == userID &&
			c.Kind == sqlconfig.TransactionKindExpense &&
			c.Amount.Equal(amount) &&
			c.Category == "Food" &&
			c.Description == "Groceries" &&
			c.TransactionDate.Equal(txDate)
	})).Return(createdID, nil)

	action := &CreateTransaction{
		UserID:          userID,
		Kind:            sqlconfig.TransactionKindExpense,
		Amount:          amount,
		Category:        "Food",
		Description:     "Groceries",
		TransactionDate: txDate,
	}
	require.NoError(t, action.Perform(context.Background(), writer))
	assert.Equal(t, createdID, action.CreatedID)
}

func TestCreateTransaction_UserMissing(t *testing.T) {
	writer, users, _, _ := newTestWriter(t)

	users.EXPECT().Exists(mock.Anything, mock.Anything).Return(false, nil)

	err := (&CreateTransaction{UserID: uuid.Must(uuid.NewV4())}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateTransaction_ExistsError(t *testing.T) {
	writer, users, _, _ := newTestWriter(t)

	users.EXPECT().Exists(mock.Anything, mock.Anything).Return(false, errors.New("timeout"))

	err := (&CreateTransaction{UserID: uuid.Must(uuid.NewV4())}).Perform(context.Background(), writer)
	assert.EqualError(t, err, "timeout")
}

// -- UpsertSettings tests --

func TestUpsertSettings_Success(t *testing.T) {
	writer, users, _, settings := newTestWriter(t)

	userID := uuid.Must(uuid.NewV4())
	budgets := []sqlconfig.BudgetLimit{{Category: "Food", Limit: decimal.NewFromInt(500000)}}

	users.EXPECT().Exists(mock.Anything, userID).Return(true, nil)
	settings.EXPECT().Upsert(mock.Anything, &sqlconfig.SettingsUpsert{
		UserID:              userID,
		MonthlyIncome:       decimal.NewFromInt(3000000),
		FixedExpenses:       decimal.NewFromInt(1000000),
		FinancialGoal:       "save",
		OnboardingCompleted: true,
		Budgets:             budgets,
	}).Return(nil)

	err := (&UpsertSettings{
		UserID:              userID,
		MonthlyIncome:       decimal.NewFromInt(3000000),
		FixedExpenses:       decimal.NewFromInt(1000000),
		FinancialGoal:       "save",
		OnboardingCompleted: true,
		Budgets:             budgets,
	}).Perform(context.Background(), writer)
	assert.NoError(t, err)
}

func TestUpsertSettings_UserMissing(t *testing.T) {
	writer, users, _, _ := newTestWriter(t)

	users.EXPECT().Exists(mock.Anything, mock.Anything).Return(false, nil)

	err := (&UpsertSettings{UserID: uuid.Must(uuid.NewV4())}).Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "CreateUser", (&CreateUser{}).Name())
	assert.Equal(t, "CreateTransaction", (&CreateTransaction{}).Name())
	assert.Equal(t, "UpsertSettings", (&UpsertSettings{}).Name())
}
