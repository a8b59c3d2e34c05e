package handlers

import (
	"errors"

	"language_connect/internal/apperr"
	"language_connect/internal/repository"
	"language_connect/internal/service"
)

// mapError turns repository and service failures into client errors.
// notFound is the message used for a bare repository.ErrNotFound.
func mapError(err error, notFound string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrUserNotFound):
		return wrap(apperr.NotFound("User not found"), err)
	case errors.Is(err, service.ErrGiftNotFound):
		return wrap(apperr.NotFound("Gift not found"), err)
	case errors.Is(err, service.ErrLessonNotFound):
		return wrap(apperr.NotFound("Lesson not found"), err)
	case errors.Is(err, service.ErrChatNotFound):
		return wrap(apperr.NotFound("Chat not found"), err)
	case errors.Is(err, service.ErrInsufficientFunds), errors.Is(err, repository.ErrInsufficientFunds):
		return wrap(apperr.BadRequest("Not enough coins"), err)
	case errors.Is(err, service.ErrEmailTaken):
		return wrap(apperr.BadRequest("Email already registered"), err)
	case errors.Is(err, repository.ErrDuplicate):
		return wrap(apperr.BadRequest("Already exists"), err)
	case errors.Is(err, repository.ErrInvalidReference):
		return wrap(apperr.NotFound("User not found"), err)
	case errors.Is(err, repository.ErrNotFound):
		return wrap(apperr.NotFound(notFound), err)
	default:
		return err
	}
}

func wrap(e *apperr.Error, cause error) *apperr.Error {
	e.Cause = cause
	return e
}
