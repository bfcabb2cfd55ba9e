package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// CreateUser registers a user together with an empty settings row.
type CreateUser struct {
	Email    string
	UserName string

	CreatedID uuid.UUID
}

func (c *CreateUser) Name() string { return "CreateUser" }

func (c *CreateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	id, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email: c.Email,
		Name:  c.UserName,
	})
	if err != nil {
		return err
	}

	err = writer.Settings.Upsert(ctx, &sqlconfig.SettingsUpsert{
		UserID:        id,
		MonthlyIncome: decimal.Zero,
		FixedExpenses: decimal.Zero,
		Budgets:       []sqlconfig.BudgetLimit{},
	})
	if err != nil {
		return err
	}

	c.CreatedID = id
	return nil
}
