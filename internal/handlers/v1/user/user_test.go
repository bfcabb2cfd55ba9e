package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/service"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) CreateUser(ctx context.Context, email, name string) (uuid.UUID, error) {
	args := m.Called(ctx, email, name)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id uuid.UUID) (*service.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func newTestAPI(t *testing.T, svc userService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewHandler(svc).Register(api)
	return api
}

func TestHTTP_CreateUser_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, "ann@example.com", "Ann").Return(id, nil)

	resp := newTestAPI(t, mockSvc).Post("/v1/user", CreateUserBody{Email: "ann@example.com", Name: "Ann"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateUserResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateUser_MissingEmail(t *testing.T) {
	mockSvc := new(mockUserService)

	resp := newTestAPI(t, mockSvc).Post("/v1/user", map[string]any{"name": "Ann"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateUser")
}

func TestHTTP_CreateUser_InvalidEmail(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, "ann", "").
		Return(uuid.Nil, errors.Join(service.ErrInvalidInput, errors.New("email is not valid")))

	resp := newTestAPI(t, mockSvc).Post("/v1/user", CreateUserBody{Email: "ann"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_CreateUser_ServiceError(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).
		Return(uuid.Nil, errors.New("unique violation"))

	resp := newTestAPI(t, mockSvc).Post("/v1/user", CreateUserBody{Email: "ann@example.com"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_GetUser_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	created := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	mockSvc := new(mockUserService)
	mockSvc.On("GetUser", mock.Anything, id).
		Return(&service.User{ID: id, Email: "ann@example.com", Name: "Ann", CreatedAt: created}, nil)

	resp := newTestAPI(t, mockSvc).Get("/v1/user/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "ann@example.com", body.Email)
	assert.Equal(t, "2025-06-01T09:30:00Z", body.CreatedAt)
}

func TestHTTP_GetUser_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockUserService)
	mockSvc.On("GetUser", mock.Anything, id).
		Return(nil, &service.NotFoundError{Entity: "user", ID: id})

	resp := newTestAPI(t, mockSvc).Get("/v1/user/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetUser_InvalidID(t *testing.T) {
	mockSvc := new(mockUserService)

	resp := newTestAPI(t, mockSvc).Get("/v1/user/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetUser")
}
