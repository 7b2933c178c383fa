package handlers

import (
	"strings"

	"finbridge/internal/dto"
	"finbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatbotHandler struct {
	chatbotService *service.ChatbotService
	logger         *zap.Logger
}

func NewChatbotHandler(chatbotService *service.ChatbotService, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotService: chatbotService,
		logger:         logger,
	}
}

// Message godoc
// @Summary Send a message to the financial advisor bot
// @Description Answers from the user's live cashflow, scores and the loan catalog
// @Tags chatbot
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string
// @Router /api/chatbot/message [post]
func (h *ChatbotHandler) Message(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(req.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message is required",
		})
	}

	resp, err := h.chatbotService.Message(c.Context(), userID, req.Message)
	if err != nil {
		h.logger.Error("Chatbot reply failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate reply",
		})
	}

	return c.JSON(resp)
}
