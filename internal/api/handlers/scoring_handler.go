package handlers

import (
	"errors"
	"time"

	"finbridge/internal/dto"
	"finbridge/internal/repository"
	"finbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ScoringHandler struct {
	scoringService *service.ScoringService
	logger         *zap.Logger
}

func NewScoringHandler(scoringService *service.ScoringService, logger *zap.Logger) *ScoringHandler {
	return &ScoringHandler{
		scoringService: scoringService,
		logger:         logger,
	}
}

// EligibilityScore godoc
// @Summary Compute the user's loan eligibility score
// @Description Scores the user's full transaction history and persists the result
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} scoring.EligibilityResult
// @Failure 401 {object} map[string]string
// @Router /api/ml/eligibility-score [get]
func (h *ScoringHandler) EligibilityScore(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	result, err := h.scoringService.Eligibility(c.Context(), userID)
	if err != nil {
		h.logger.Error("Eligibility scoring failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute eligibility score",
		})
	}

	return c.JSON(result)
}

// HealthScore godoc
// @Summary Compute the user's financial health score
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} scoring.HealthResult
// @Failure 401 {object} map[string]string
// @Router /api/ml/health-score [get]
func (h *ScoringHandler) HealthScore(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	result, err := h.scoringService.Health(c.Context(), userID)
	if err != nil {
		h.logger.Error("Health scoring failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute health score",
		})
	}

	return c.JSON(result)
}

// LatestScores godoc
// @Summary Most recently persisted scores for the user
// @Tags scoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.LatestScoresResponse
// @Failure 404 {object} map[string]string
// @Router /api/ml/scores/latest [get]
func (h *ScoringHandler) LatestScores(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	score, err := h.scoringService.Latest(c.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoScores) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No scores recorded yet",
			})
		}
		h.logger.Error("Failed to fetch latest scores", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch scores",
		})
	}

	return c.JSON(dto.LatestScoresResponse{
		EligibilityScore: score.EligibilityScore,
		RiskLevel:        score.RiskLevel,
		HealthScore:      score.HealthScore,
		CreatedAt:        score.CreatedAt.Format(time.RFC3339),
	})
}
