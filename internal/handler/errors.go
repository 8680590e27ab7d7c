package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lightbnb/api/internal/repository"
	"github.com/lightbnb/api/internal/service"
)

// serviceError maps a service failure onto the response envelope.
// Unclassified errors are logged and answered with the generic fallback message.
func serviceError(c echo.Context, err error, fallback string) error {
	var vErr service.ValidationError
	switch {
	case errors.As(err, &vErr):
		return ErrorWithData(c, http.StatusBadRequest, vErr.Message, vErr.Fields)
	case errors.Is(err, repository.ErrUserNotFound):
		return Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, repository.ErrEmailDuplicate):
		return Error(c, http.StatusConflict, "email already exists")
	case errors.Is(err, repository.ErrReferenceNotFound):
		return Error(c, http.StatusUnprocessableEntity, "referenced record does not exist")
	case errors.Is(err, repository.ErrConstraintViolation):
		return Error(c, http.StatusUnprocessableEntity, "record violates a store constraint")
	}

	zerolog.Ctx(c.Request().Context()).Error().Err(err).Str("path", c.Path()).Msg(fallback)
	return Error(c, http.StatusInternalServerError, fallback)
}
