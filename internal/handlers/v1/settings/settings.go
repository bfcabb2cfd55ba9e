package settings

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/common"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

// Settings is the API model for a user's budget settings.
type Settings struct {
	UserID              string            `json:"userID" doc:"Owner UUID"`
	MonthlyIncome       string            `json:"monthlyIncome" doc:"Expected monthly income"`
	FixedExpenses       string            `json:"fixedExpenses" doc:"Rent, utilities and other fixed monthly costs"`
	FinancialGoal       string            `json:"financialGoal"`
	OnboardingCompleted bool              `json:"onboardingCompleted"`
	Budgets             map[string]string `json:"budgets" doc:"Monthly limit per category label"`
	UpdatedAt           string            `json:"updatedAt" doc:"RFC3339 time of the last update"`
}

type settingsService interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*service.Settings, error)
	UpdateSettings(ctx context.Context, settings service.Settings) error
}

// Handler serves the settings endpoints.
type Handler struct {
	SettingsService settingsService
}

func NewHandler(svc settingsService) *Handler {
	return &Handler{SettingsService: svc}
}

type GetSettingsInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
}

type SettingsOutput struct {
	Body Settings
}

type UpdateSettingsBody struct {
	MonthlyIncome       string            `json:"monthlyIncome" required:"true" doc:"Non-negative decimal"`
	FixedExpenses       string            `json:"fixedExpenses" required:"true" doc:"Non-negative decimal"`
	FinancialGoal       string            `json:"financialGoal,omitempty" maxLength:"200"`
	OnboardingCompleted bool              `json:"onboardingCompleted,omitempty"`
	Budgets             map[string]string `json:"budgets,omitempty" doc:"Monthly limit per category label, replaces all existing limits"`
}

type UpdateSettingsInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
	Body   UpdateSettingsBody
}

// Register registers the settings endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-settings",
		Method:      http.MethodGet,
		Path:        "/v1/settings/{userID}",
		Summary:     "Get settings",
		Tags:        []string{"Settings"},
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-settings",
		Method:      http.MethodPut,
		Path:        "/v1/settings/{userID}",
		Summary:     "Update settings",
		Description: "Replaces the user's income, fixed expenses, goal and category budgets.",
		Tags:        []string{"Settings"},
	}, h.update)
}

func (h *Handler) get(ctx context.Context, input *GetSettingsInput) (*SettingsOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	settings, err := h.SettingsService.GetSettings(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to get settings")
	}
	return &SettingsOutput{Body: toResponse(settings)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	settings, err := parseUpdateSettingsInput(input)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	timed := func(call func() error) error {
		if logData == nil {
			return call()
		}
		stop := logData.AddToExistingTiming("settingsMs")
		defer stop()
		return call()
	}

	if err := timed(func() error { return h.SettingsService.UpdateSettings(ctx, settings) }); err != nil {
		return nil, common.ServiceError(err, "failed to update settings")
	}

	var updated *service.Settings
	err = timed(func() error {
		var getErr error
		updated, getErr = h.SettingsService.GetSettings(ctx, settings.UserID)
		return getErr
	})
	if err != nil {
		return nil, common.ServiceError(err, "failed to get settings")
	}
	return &SettingsOutput{Body: toResponse(updated)}, nil
}

func parseUpdateSettingsInput(input *UpdateSettingsInput) (service.Settings, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return service.Settings{}, err
	}

	income, err := decimal.NewFromString(input.Body.MonthlyIncome)
	if err != nil {
		return service.Settings{}, huma.NewError(http.StatusBadRequest, "invalid monthlyIncome", err)
	}
	fixed, err := decimal.NewFromString(input.Body.FixedExpenses)
	if err != nil {
		return service.Settings{}, huma.NewError(http.StatusBadRequest, "invalid fixedExpenses", err)
	}

	budgets := make([]sqlconfig.BudgetLimit, 0, len(input.Body.Budgets))
	for category, raw := range input.Body.Budgets {
		limit, err := decimal.NewFromString(raw)
		if err != nil {
			return service.Settings{}, huma.NewError(http.StatusBadRequest, "invalid budget for "+category, err)
		}
		budgets = append(budgets, sqlconfig.BudgetLimit{Category: category, Limit: limit})
	}

	return service.Settings{
		UserID:              userID,
		MonthlyIncome:       income,
		FixedExpenses:       fixed,
		FinancialGoal:       input.Body.FinancialGoal,
		OnboardingCompleted: input.Body.OnboardingCompleted,
		Budgets:             budgets,
	}, nil
}

func toResponse(s *service.Settings) Settings {
	budgets := make(map[string]string, len(s.Budgets))
	for _, b := range s.Budgets {
		budgets[b.Category] = common.Amount(b.Limit)
	}
	return Settings{
		UserID:              s.UserID.String(),
		MonthlyIncome:       common.Amount(s.MonthlyIncome),
		FixedExpenses:       common.Amount(s.FixedExpenses),
		FinancialGoal:       s.FinancialGoal,
		OnboardingCompleted: s.OnboardingCompleted,
		Budgets:             budgets,
		UpdatedAt:           s.UpdatedAt.Format(time.RFC3339),
	}
}
