package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// TxFinisher ends the transaction a Writer is bound to.
type TxFinisher interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes tables bound to a single open transaction.
type Writer struct {
	Tx           TxFinisher
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	Settings     sqlconfig.ISettingsTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Users:        sqlconfig.NewUsersTable(tx),
		Transactions: sqlconfig.NewTransactionsTable(tx),
		Settings:     sqlconfig.NewSettingsTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.Tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.Tx.Rollback(context.Background())
}
