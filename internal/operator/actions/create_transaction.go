package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

type CreateTransaction struct {
	UserID          uuid.UUID
	Kind            sqlconfig.TransactionKind
	Amount          decimal.Decimal
	Category        string
	Description     string
	TransactionDate time.Time

	CreatedID uuid.UUID
}

func (t *CreateTransaction) Name() string { return "CreateTransaction" }

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	exists, err := writer.Users.Exists(ctx, t.UserID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		UserID:          t.UserID,
		Kind:            t.Kind,
		Amount:          t.Amount,
		Category:        t.Category,
		Description:     t.Description,
		TransactionDate: t.TransactionDate,
	})
	if err != nil {
		return err
	}

	t.CreatedID = id
	return nil
}
