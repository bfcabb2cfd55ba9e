package common

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-insights/internal/service"
)

// ServiceError maps a service error onto an HTTP status. Unknown errors become a 500 with msg.
func ServiceError(err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.Error404NotFound(err.Error(), err)
	case errors.Is(err, service.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error(), err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

// ParseUserID parses a path or body user ID.
func ParseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	return id, nil
}
