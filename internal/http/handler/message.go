package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"portfolioapi/internal/service"
)

const maxMessageLen = 1000

type createMessageRequest struct {
	Message string `json:"message"`
}

// CreateMessage godoc
// @Summary Send a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body createMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} errorPayload
// @Router /api/messages [post]
func CreateMessage(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		text := strings.TrimSpace(req.Message)
		if text == "" || len(text) > maxMessageLen {
			return writeError(c, fiber.StatusBadRequest, "INVALID_MESSAGE", "message must be 1 to 1000 characters")
		}

		message, err := svc.Create(c.UserContext(), text)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(message)
	}
}

// ListMessages godoc
// @Summary List contact messages
// @Tags messages
// @Produce json
// @Success 200 {array} model.Message
// @Router /api/messages [get]
func ListMessages(svc service.MessageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		messages, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(messages)
	}
}
