package handlers

import (
	"finbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RiskHandler struct {
	riskService *service.RiskService
	logger      *zap.Logger
}

func NewRiskHandler(riskService *service.RiskService, logger *zap.Logger) *RiskHandler {
	return &RiskHandler{
		riskService: riskService,
		logger:      logger,
	}
}

// Flags godoc
// @Summary List recorded risk flags (admin only)
// @Tags fraud
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RiskFlagResponse
// @Failure 403 {object} map[string]string
// @Router /api/fraud/flags [get]
func (h *RiskHandler) Flags(c *fiber.Ctx) error {
	flags, err := h.riskService.Flags(c.Context())
	if err != nil {
		h.logger.Error("Failed to list risk flags", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch risk flags",
		})
	}

	return c.JSON(flags)
}

// Analyze godoc
// @Summary Run the risk heuristics over a user's recent transactions (admin only)
// @Tags fraud
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} dto.RiskFlagResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/fraud/analyze/{userId} [post]
func (h *RiskHandler) Analyze(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	flag, err := h.riskService.Analyze(c.Context(), userID)
	if err != nil {
		h.logger.Error("Risk analysis failed", zap.Error(err), zap.String("user_id", userID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze user",
		})
	}

	return c.JSON(flag)
}
