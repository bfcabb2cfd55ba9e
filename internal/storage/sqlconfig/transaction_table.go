package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable binds the table to a DB or an open transaction.
func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

type transactionRow struct {
	ID              uuid.UUID       `db:"id"`
	UserID          uuid.UUID       `db:"user_id"`
	Kind            string          `db:"kind"`
	Amount          decimal.Decimal `db:"amount"`
	Category        string          `db:"category"`
	Description     string          `db:"description"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedAt       time.Time       `db:"created_at"`
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	transactionDate := create.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now()
	}

	query := psql.Insert(
		im.Into(transactionsTable, "user_id", "kind", "amount", "category", "description", "transaction_date"),
		im.Values(psql.Arg(
			create.UserID,
			string(create.Kind),
			create.Amount,
			create.Category,
			create.Description,
			dateArg(transactionDate),
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, query, scan.SingleColumnMapper[uuid.UUID])
}

// List returns one page of a user's transactions, newest first.
// One row beyond Limit is fetched so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "user_id", "kind", "amount", "category", "description", "transaction_date", "created_at"),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Kind != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("kind").EQ(psql.Arg(string(*filter.Kind)))))
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	queryMods = append(queryMods, dateRangeMods(filter.DateFrom, filter.DateTo)...)
	if filter.MaxCreationTime != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime))))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("transaction_date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*Transaction, len(rows))
	for i, row := range rows {
		result[i] = rowToTransaction(row)
	}
	return result, nil
}

// Sum totals the amounts matching filter. An empty match sums to zero.
func (t *TransactionsTable) Sum(ctx context.Context, filter *SumFilter) (decimal.Decimal, error) {
	return bob.One(ctx, t.exec, sumQuery(filter), scan.SingleColumnMapper[decimal.Decimal])
}

func sumQuery(filter *SumFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns("COALESCE(SUM(amount), 0)"),
		sm.From(transactionsTable),
	}, sumFilterMods(filter)...)
	return psql.Select(queryMods...)
}

// GroupByCategory totals the matching amounts per category label,
// largest total first and label ascending on ties.
func (t *TransactionsTable) GroupByCategory(ctx context.Context, filter *SumFilter) ([]*CategoryTotal, error) {
	return bob.All(ctx, t.exec, groupByCategoryQuery(filter), scan.StructMapper[*CategoryTotal]())
}

func groupByCategoryQuery(filter *SumFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns("category", "COALESCE(SUM(amount), 0) AS total", "COUNT(*) AS count"),
		sm.From(transactionsTable),
	}, sumFilterMods(filter)...)
	queryMods = append(queryMods,
		sm.GroupBy("category"),
		sm.OrderBy("total").Desc(),
		sm.OrderBy("category").Asc(),
	)
	return psql.Select(queryMods...)
}

// DailyTotals sums expenses and incomes per day in one grouped query.
func (t *TransactionsTable) DailyTotals(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]*DailyTotal, error) {
	return bob.All(ctx, t.exec, dailyTotalsQuery(userID, from, to), scan.StructMapper[*DailyTotal]())
}

func dailyTotalsQuery(userID uuid.UUID, from time.Time, to time.Time) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"transaction_date AS day",
			"COALESCE(SUM(amount) FILTER (WHERE kind = 'expense'), 0) AS expenses",
			"COALESCE(SUM(amount) FILTER (WHERE kind = 'income'), 0) AS incomes",
		),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
	}
	queryMods = append(queryMods, dateRangeMods(&from, &to)...)
	queryMods = append(queryMods,
		sm.GroupBy("transaction_date"),
		sm.OrderBy("transaction_date").Asc(),
	)
	return psql.Select(queryMods...)
}

// Recurring groups matching rows by category and amount rounded to the nearest thousand,
// keeping groups with at least minCount rows. Most frequent first.
func (t *TransactionsTable) Recurring(ctx context.Context, filter *SumFilter, minCount int, limit int) ([]*RecurringGroup, error) {
	return bob.All(ctx, t.exec, recurringQuery(filter, minCount, limit), scan.StructMapper[*RecurringGroup]())
}

func recurringQuery(filter *SumFilter, minCount int, limit int) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns("category", "ROUND(amount, -3) AS amount", "COUNT(*) AS count", "SUM(amount) AS total"),
		sm.From(transactionsTable),
	}, sumFilterMods(filter)...)
	queryMods = append(queryMods,
		sm.GroupBy("category"),
		sm.GroupBy("ROUND(amount, -3)"),
		sm.Having(psql.Raw("COUNT(*) >= ?", minCount)),
		sm.OrderBy("count").Desc(),
		sm.OrderBy("total").Desc(),
		sm.OrderBy("category").Asc(),
		sm.Limit(limit),
	)
	return psql.Select(queryMods...)
}

func sumFilterMods(filter *SumFilter) []bob.Mod[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
		sm.Where(psql.Quote("kind").EQ(psql.Arg(string(filter.Kind)))),
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(*filter.Category))))
	}
	return append(queryMods, dateRangeMods(filter.DateFrom, filter.DateTo)...)
}

func dateRangeMods(from, to *time.Time) []bob.Mod[*dialect.SelectQuery] {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if from != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(dateArg(*from)))))
	}
	if to != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("transaction_date").LTE(psql.Arg(dateArg(*to)))))
	}
	return queryMods
}

// dateArg sends a calendar date so the DATE column never sees a time zone shift.
func dateArg(t time.Time) string {
	return t.Format(time.DateOnly)
}

func rowToTransaction(row transactionRow) *Transaction {
	return &Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		Kind:            TransactionKind(row.Kind),
		Amount:          row.Amount,
		Category:        row.Category,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
}
