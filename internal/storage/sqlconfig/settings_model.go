package sqlconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var ErrInvalidBudget = errors.New("invalid budget")

// BudgetLimit is the monthly spending cap for one category.
type BudgetLimit struct {
	Category string
	Limit    decimal.Decimal
}

// Settings represents a user's budget settings.
type Settings struct {
	UserID              uuid.UUID
	MonthlyIncome       decimal.Decimal
	FixedExpenses       decimal.Decimal
	FinancialGoal       string
	OnboardingCompleted bool
	Budgets             []BudgetLimit // sorted by category
	UpdatedAt           time.Time
}

// SettingsUpsert is the input for creating or replacing a user's settings.
type SettingsUpsert struct {
	UserID              uuid.UUID
	MonthlyIncome       decimal.Decimal
	FixedExpenses       decimal.Decimal
	FinancialGoal       string
	OnboardingCompleted bool
	Budgets             []BudgetLimit
}

// ISettingsTable defines the interface for settings storage operations.
//
//go:generate mockery --name ISettingsTable --output mock_ISettingsTable.go
type ISettingsTable interface {
	// FindByUserID returns nil, nil when the user has no settings row.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Settings, error)
	Upsert(ctx context.Context, upsert *SettingsUpsert) error
}

// ValidateBudgets rejects empty labels, duplicate labels and negative limits.
func ValidateBudgets(budgets []BudgetLimit) error {
	seen := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		if b.Category == "" {
			return fmt.Errorf("%w: empty category", ErrInvalidBudget)
		}
		if _, ok := seen[b.Category]; ok {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidBudget, b.Category)
		}
		seen[b.Category] = struct{}{}
		if b.Limit.IsNegative() {
			return fmt.Errorf("%w: negative limit for %q", ErrInvalidBudget, b.Category)
		}
	}
	return nil
}

// SortBudgets orders budgets by category in place.
func SortBudgets(budgets []BudgetLimit) {
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Category < budgets[j].Category
	})
}

func encodeBudgets(budgets []BudgetLimit) (string, error) {
	byCategory := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		byCategory[b.Category] = b.Limit
	}
	encoded, err := json.Marshal(byCategory)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func decodeBudgets(raw []byte) ([]BudgetLimit, error) {
	if len(raw) == 0 {
		return []BudgetLimit{}, nil
	}

	var byCategory map[string]decimal.Decimal
	if err := json.Unmarshal(raw, &byCategory); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBudget, err)
	}

	budgets := make([]BudgetLimit, 0, len(byCategory))
	for category, limit := range byCategory {
		budgets = append(budgets, BudgetLimit{Category: category, Limit: limit})
	}
	SortBudgets(budgets)

	if err := ValidateBudgets(budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}
