package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, errorResponse{Error: ve.Error(), Fields: ve.Fields}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrRoadmapNotFound):
		return http.StatusNotFound, errorResponse{Error: "roadmap not found"}
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, errorResponse{Error: "project not found"}
	case errors.Is(err, domain.ErrMentorNotFound):
		return http.StatusNotFound, errorResponse{Error: "mentor not found"}
	case errors.Is(err, domain.ErrSessionInvalid):
		return http.StatusUnauthorized, errorResponse{Error: "invalid session"}
	case errors.Is(err, domain.ErrChatBusy):
		return http.StatusConflict, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.Warn().Err(err).Str("path", c.Path()).Msg("storage unavailable")
		return http.StatusServiceUnavailable, errorResponse{Error: "storage unavailable"}
	case errors.Is(err, domain.ErrCompletionFailed):
		log.Warn().Err(err).Str("path", c.Path()).Msg("completion failed")
		return http.StatusBadGateway, errorResponse{Error: "completion provider unavailable"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
