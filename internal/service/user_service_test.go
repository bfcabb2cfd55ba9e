package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage/sqlconfig"
)

func TestCreateUser_Success(t *testing.T) {
	expectedID := uuid.Must(uuid.NewV4())
	processor := &fakeProcessor{perform: func(action actions.IAction) {
		action.(*actions.CreateUser).CreatedID = expectedID
	}}
	store, _ := newMockStorage(t)
	svc := NewUserService(store, processor)

	id, err := svc.CreateUser(context.Background(), "  ann@example.com ", " Ann ")

	require.NoError(t, err)
	assert.Equal(t, expectedID, id)
	action := processor.processed[0].(*actions.CreateUser)
	assert.Equal(t, "ann@example.com", action.Email)
	assert.Equal(t, "Ann", action.Name)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	processor := &fakeProcessor{}
	store, _ := newMockStorage(t)
	svc := NewUserService(store, processor)

	_, err := svc.CreateUser(context.Background(), "not-an-email", "Ann")

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, processor.processed)
}

func TestCreateUser_OperatorError(t *testing.T) {
	store, _ := newMockStorage(t)
	svc := NewUserService(store, &fakeProcessor{err: errors.New("duplicate email")})

	id, err := svc.CreateUser(context.Background(), "ann@example.com", "Ann")

	assert.EqualError(t, err, "duplicate email")
	assert.Equal(t, uuid.Nil, id)
}

func TestGetUser(t *testing.T) {
	store, tables := newMockStorage(t)
	svc := NewUserService(store, &fakeProcessor{})

	id := uuid.Must(uuid.NewV4())
	createdAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tables.users.EXPECT().FindByID(mock.Anything, id).Return(&sqlconfig.User{
		ID:        id,
		Email:     "ann@example.com",
		Name:      "Ann",
		CreatedAt: createdAt,
	}, nil)

	user, err := svc.GetUser(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, &User{ID: id, Email: "ann@example.com", Name: "Ann", CreatedAt: createdAt}, user)
}

func TestGetUser_NotFound(t *testing.T) {
	store, tables := newMockStorage(t)
	svc := NewUserService(store, &fakeProcessor{})

	tables.users.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil)

	user, err := svc.GetUser(context.Background(), uuid.Must(uuid.NewV4()))

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrNotFound)
}
