package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/core/ports"
)

// SessionHandler issues anonymous session tokens.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type sessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// Create handles POST /v1/sessions.
//
// @Summary      Start an anonymous session
// @Tags         sessions
// @Produce      json
// @Success      201  {object}  sessionResponse
// @Failure      500  {object}  map[string]string
// @Router       /v1/sessions [post]
func (h *SessionHandler) Create(c echo.Context) error {
	sess, err := h.service.Issue(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}
