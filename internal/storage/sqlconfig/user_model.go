package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

type UserCreate struct {
	Email string
	Name  string
}

//go:generate mockery --name IUserTable --output mock_IUserTable.go
type IUserTable interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// FindByID returns nil, nil when no user has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (uuid.UUID, error)
}
