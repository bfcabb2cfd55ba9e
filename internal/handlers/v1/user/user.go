package user

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/handlers/v1/common"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/service"
)

// User is the API response model for a user.
type User struct {
	ID        string `json:"id" doc:"User UUID"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

type userService interface {
	CreateUser(ctx context.Context, email, name string) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*service.User, error)
}

// Handler serves the user endpoints.
type Handler struct {
	UserService userService
}

func NewHandler(svc userService) *Handler {
	return &Handler{UserService: svc}
}

type CreateUserBody struct {
	Email string `json:"email" required:"true" maxLength:"254" doc:"Login email"`
	Name  string `json:"name,omitempty" maxLength:"100" doc:"Display name"`
}

type CreateUserInput struct {
	Body CreateUserBody
}

type CreateUserResponse struct {
	ID string `json:"id" doc:"UUID of the created user"`
}

type CreateUserOutput struct {
	Status int
	Body   CreateUserResponse
}

type GetUserInput struct {
	UserID string `path:"userID" format:"uuid" doc:"User UUID"`
}

type GetUserOutput struct {
	Body User
}

// Register registers the user endpoints with the Huma API.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/v1/user",
		Summary:       "Create user",
		Description:   "Registers a user and creates empty budget settings for them.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/v1/user/{userID}",
		Summary:     "Get user",
		Tags:        []string{"Users"},
	}, h.get)
}

func (h *Handler) create(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	id, err := h.UserService.CreateUser(ctx, input.Body.Email, input.Body.Name)
	if err != nil {
		return nil, common.ServiceError(err, "failed to create user")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", id.String())
	}

	return &CreateUserOutput{
		Status: http.StatusCreated,
		Body:   CreateUserResponse{ID: id.String()},
	}, nil
}

func (h *Handler) get(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	userID, err := common.ParseUserID(input.UserID)
	if err != nil {
		return nil, err
	}

	u, err := h.UserService.GetUser(ctx, userID)
	if err != nil {
		return nil, common.ServiceError(err, "failed to get user")
	}

	return &GetUserOutput{Body: User{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}}, nil
}
