package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all non-validation errors.
type errorResponse struct {
	Error string `json:"error"`
}

// fieldErrorItem is a single validation failure, one per failing field.
type fieldErrorItem struct {
	Msg string `json:"msg"`
}

// validationResponse enumerates every failing field of a rejected request.
type validationResponse struct {
	Errors []fieldErrorItem `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation errors as an enumerated list, one entry per field.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			items := make([]fieldErrorItem, 0, len(ve.Messages))
			for _, msg := range ve.Messages {
				items = append(items, fieldErrorItem{Msg: msg})
			}
			_ = c.JSON(http.StatusBadRequest, validationResponse{Errors: items})
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Profile lookups
	// return 400 on absence (the original API contract the SPA relies on);
	// post and comment lookups return 404.
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusBadRequest, "there is no profile for this user"
	case errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound, "profile entry not found"
	case errors.Is(err, domain.ErrPostNotFound):
		return http.StatusNotFound, "post not found"
	case errors.Is(err, domain.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, domain.ErrNotPostAuthor):
		return http.StatusUnauthorized, "user not authorized"
	case errors.Is(err, domain.ErrAlreadyLiked):
		return http.StatusBadRequest, "post already liked"
	case errors.Is(err, domain.ErrNotLiked):
		return http.StatusBadRequest, "post has not yet been liked"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrGithubUserNotFound):
		return http.StatusNotFound, "no github profile found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
