package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Storage holds the read-side tables bound to the connection pool.
type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Users        sqlconfig.IUserTable
	Transactions sqlconfig.ITransactionTable
	Settings     sqlconfig.ISettingsTable
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	bobDB := bob.NewDB(db)
	return &Storage{
		DB:           db,
		bobDB:        bobDB,
		Users:        sqlconfig.NewUsersTable(bobDB),
		Transactions: sqlconfig.NewTransactionsTable(bobDB),
		Settings:     sqlconfig.NewSettingsTable(bobDB),
	}, nil
}

// Write opens a transaction. The caller must Commit or Rollback the returned Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
