package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/operator/actions"
	"github.com/carson-networks/budget-insights/internal/storage"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

type UserService struct {
	storage  *storage.Storage
	operator actionProcessor
}

func NewUserService(store *storage.Storage, operator actionProcessor) *UserService {
	return &UserService{storage: store, operator: operator}
}

// CreateUser registers a user with empty settings and returns the new ID.
func (s *UserService) CreateUser(ctx context.Context, email, name string) (uuid.UUID, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return uuid.Nil, invalidInput("email %q is not valid", email)
	}

	action := &actions.CreateUser{Email: email, UserName: strings.TrimSpace(name)}
	if err := s.operator.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &NotFoundError{Entity: "user", ID: id}
	}
	return &User{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}, nil
}
