package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/budget-insights/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

// IAction is one unit of work run inside a single storage transaction.
type IAction interface {
	// Name identifies the action in logs.
	Name() string
	Perform(ctx context.Context, writer *storage.Writer) error
}
