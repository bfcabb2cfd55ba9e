package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	User        *UserService
	Settings    *SettingsService
	Analytics   *AnalyticsService
	Insight     *InsightService
}

// NewService wires every service to the same storage, write queue and calendar.
func NewService(store *storage.Storage, operator actionProcessor, calendar *Calendar, negativeThreshold decimal.Decimal) *Service {
	return &Service{
		Transaction: NewTransactionService(store, operator, calendar),
		User:        NewUserService(store, operator),
		Settings:    NewSettingsService(store, operator),
		Analytics:   NewAnalyticsService(store, calendar),
		Insight:     NewInsightService(store, calendar, negativeThreshold),
	}
}
