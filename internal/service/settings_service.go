package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Settings is a user's monthly budget configuration. Budgets are sorted by category.
type Settings struct {
	UserID              uuid.UUID
	MonthlyIncome       decimal.Decimal
	FixedExpenses       decimal.Decimal
	FinancialGoal       string
	OnboardingCompleted bool
	Budgets             []sqlconfig.BudgetLimit
	UpdatedAt           time.Time
}

type SettingsService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewSettingsService(store *storage.Storage, operator actionProcessor) *SettingsService {
	return &SettingsService{storage: store, operator: operator}
}

func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*Settings, error) {
	row, err := s.storage.Settings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "settings", ID: userID}
	}
	return &Settings{
		UserID:              row.UserID,
		MonthlyIncome:       row.MonthlyIncome,
		FixedExpenses:       row.FixedExpenses,
		FinancialGoal:       row.FinancialGoal,
		OnboardingCompleted: row.OnboardingCompleted,
		Budgets:             row.Budgets,
		UpdatedAt:           row.UpdatedAt,
	}, nil
}

// UpdateSettings replaces every settings field for the user.
func (s *SettingsService) UpdateSettings(ctx context.Context, settings Settings) error {
	if settings.MonthlyIncome.IsNegative() || settings.FixedExpenses.IsNegative() {
		return invalidInput("income and fixed expenses must not be negative")
	}

	budgets := append([]sqlconfig.BudgetLimit(nil), settings.Budgets...)
	if err := sqlconfig.ValidateBudgets(budgets); err != nil {
		return invalidInput("%v", err)
	}
	sqlconfig.SortBudgets(budgets)

	err := s.operator.Process(ctx, &actions.UpsertSettings{
		UserID:              settings.UserID,
		MonthlyIncome:       settings.MonthlyIncome,
		FixedExpenses:       settings.FixedExpenses,
		FinancialGoal:       settings.FinancialGoal,
		OnboardingCompleted: settings.OnboardingCompleted,
		Budgets:             budgets,
	})
	if errors.Is(err, actions.ErrUserNotFound) {
		return &NotFoundError{Entity: "user", ID: settings.UserID}
	}
	return err
}
