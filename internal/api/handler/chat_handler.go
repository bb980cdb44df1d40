package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

// ChatHandler relays advisory chat requests to the completion provider.
type ChatHandler struct {
	service ports.ChatService
	log     zerolog.Logger
}

func NewChatHandler(service ports.ChatService, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{service: service, log: log}
}

// --- Request / Response types ---

type chatRequest struct {
	Messages    []domain.ChatTurn   `json:"messages"              validate:"dive"`
	UserProfile *domain.UserProfile `json:"userProfile,omitempty"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

const chatFailureMessage = "Failed to generate response"

// Ask handles POST /chat.
//
// @Summary      Ask the career advisor
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Conversation history and optional profile"
// @Success      200   {object}  chatResponse
// @Failure      500   {object}  chatResponse
// @Router       /chat [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		h.log.Warn().Err(err).Msg("chat: invalid payload")
		return c.JSON(http.StatusInternalServerError, chatResponse{Error: chatFailureMessage})
	}
	if err := c.Validate(&req); err != nil {
		h.log.Warn().Err(err).Msg("chat: invalid history")
		return c.JSON(http.StatusInternalServerError, chatResponse{Error: chatFailureMessage})
	}

	reply, err := h.service.Ask(c.Request().Context(), req.Messages, req.UserProfile)
	if err != nil {
		h.log.Warn().Err(err).Int("turns", len(req.Messages)).Msg("chat: request failed")
		return c.JSON(http.StatusInternalServerError, chatResponse{Error: chatFailureMessage})
	}

	return c.JSON(http.StatusOK, chatResponse{Success: true, Message: reply})
}
