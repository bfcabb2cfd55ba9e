package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// UpsertSettings replaces every settings field for an existing user.
type UpsertSettings struct {
	UserID              uuid.UUID
	MonthlyIncome       decimal.Decimal
	FixedExpenses       decimal.Decimal
	FinancialGoal       string
	OnboardingCompleted bool
	Budgets             []sqlconfig.BudgetLimit
}

func (u *UpsertSettings) Name() string { return "UpsertSettings" }

func (u *UpsertSettings) Perform(ctx context.Context, writer *storage.Writer) error {
	exists, err := writer.Users.Exists(ctx, u.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	return writer.Settings.Upsert(ctx, &sqlconfig.SettingsUpsert{
		UserID:              u.UserID,
		MonthlyIncome:       u.MonthlyIncome,
		FixedExpenses:       u.FixedExpenses,
		FinancialGoal:       u.FinancialGoal,
		OnboardingCompleted: u.OnboardingCompleted,
		Budgets:             u.Budgets,
	})
}
