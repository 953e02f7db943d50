package middleware

import (
	"errors"
	"net/http"

	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders service and echo errors as JSON. Unexpected failures
// stay opaque to the caller; the cause is logged for operators.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var (
		code = http.StatusInternalServerError
		body = map[string]string{"message": "internal server error"}
	)

	var verr *service.ValidationError
	var nferr *service.NotFoundError
	var he *echo.HTTPError

	switch {
	case errors.As(err, &verr):
		code = http.StatusBadRequest
		body = map[string]string{"message": verr.Message, "field": verr.Field}
	case errors.Is(err, service.ErrInvalidCredentials):
		code = http.StatusUnauthorized
		body = map[string]string{"message": service.ErrInvalidCredentials.Error()}
	case errors.Is(err, service.ErrUnauthorized):
		code = http.StatusUnauthorized
		body = map[string]string{"message": service.ErrUnauthorized.Error()}
	case errors.Is(err, service.ErrUsernameTaken):
		code = http.StatusConflict
		body = map[string]string{"message": service.ErrUsernameTaken.Error()}
	case errors.As(err, &nferr):
		code = http.StatusNotFound
		body = map[string]string{"message": nferr.Error()}
	case errors.As(err, &he):
		code = he.Code
		if m, ok := he.Message.(string); ok {
			body = map[string]string{"message": m}
		}
	default:
		log.Error().Err(err).Str("uri", c.Request().RequestURI).Msg("unhandled error")
	}

	_ = c.JSON(code, body)
}
