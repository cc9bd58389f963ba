package handler

import (
	"errors"
	"log/slog"

	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/service"
)

// MapServiceError classifies a service error into the central error wire
// shape. This keeps status codes and titles consistent across handlers;
// anything unrecognized is terminal and classifies as a 500.
func MapServiceError(err error) *model.ErrorResponse {
	if err == nil {
		return nil
	}

	switch {
	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrMissingUserFields),
		errors.Is(err, service.ErrMissingLoginFields),
		errors.Is(err, service.ErrMissingContactFields),
		errors.Is(err, service.ErrEmptyContactField),
		errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewValidationError(err.Error())

	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrNotContactOwner):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrContactNotFound):
		return model.NewNotFoundError("contact")

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", slog.Any("error", err))
		return model.NewServerError("")
	}
}
