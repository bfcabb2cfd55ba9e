package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const settingsTable = "user_settings"

var _ ISettingsTable = (*SettingsTable)(nil)

type SettingsTable struct {
	exec bob.Executor
}

func NewSettingsTable(exec bob.Executor) *SettingsTable {
	return &SettingsTable{exec: exec}
}

type settingsRow struct {
	UserID              uuid.UUID       `db:"user_id"`
	MonthlyIncome       decimal.Decimal `db:"monthly_income"`
	FixedExpenses       decimal.Decimal `db:"fixed_expenses"`
	FinancialGoal       string          `db:"financial_goal"`
	OnboardingCompleted bool            `db:"onboarding_completed"`
	Budgets             []byte          `db:"budgets"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (t *SettingsTable) FindByUserID(ctx context.Context, userID uuid.UUID) (*Settings, error) {
	query := psql.Select(
		sm.Columns("user_id", "monthly_income", "fixed_expenses", "financial_goal", "onboarding_completed", "budgets", "updated_at"),
		sm.From(settingsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	)

	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[settingsRow]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	budgets, err := decodeBudgets(row.Budgets)
	if err != nil {
		return nil, err
	}

	return &Settings{
		UserID:              row.UserID,
		MonthlyIncome:       row.MonthlyIncome,
		FixedExpenses:       row.FixedExpenses,
		FinancialGoal:       row.FinancialGoal,
		OnboardingCompleted: row.OnboardingCompleted,
		Budgets:             budgets,
		UpdatedAt:           row.UpdatedAt,
	}, nil
}

// Upsert inserts the settings row or replaces every field of the existing one.
func (t *SettingsTable) Upsert(ctx context.Context, upsert *SettingsUpsert) error {
	if err := ValidateBudgets(upsert.Budgets); err != nil {
		return err
	}
	budgets, err := encodeBudgets(upsert.Budgets)
	if err != nil {
		return err
	}

	query := psql.Insert(
		im.Into(settingsTable, "user_id", "monthly_income", "fixed_expenses", "financial_goal", "onboarding_completed", "budgets", "updated_at"),
		im.Values(psql.Arg(
			upsert.UserID,
			upsert.MonthlyIncome,
			upsert.FixedExpenses,
			upsert.FinancialGoal,
			upsert.OnboardingCompleted,
			budgets,
			time.Now().UTC(),
		)),
		im.OnConflict("user_id").DoUpdate(
			im.SetExcluded("monthly_income", "fixed_expenses", "financial_goal", "onboarding_completed", "budgets", "updated_at"),
		),
	)

	_, err = bob.Exec(ctx, t.exec, query)
	return err
}
