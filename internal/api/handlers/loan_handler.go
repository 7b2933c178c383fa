package handlers

import (
	"errors"

	"finbridge/internal/dto"
	"finbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LoanHandler struct {
	loanService *service.LoanService
	logger      *zap.Logger
}

func NewLoanHandler(loanService *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		logger:      logger,
	}
}

// Products godoc
// @Summary List the loan product catalog
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LoanProductResponse
// @Router /api/loan-products [get]
func (h *LoanHandler) Products(c *fiber.Ctx) error {
	products, err := h.loanService.Products(c.Context())
	if err != nil {
		h.logger.Error("Failed to list loan products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch loan products",
		})
	}

	return c.JSON(products)
}

// Recommendations godoc
// @Summary Rank loan products for the user's requested amount and tenure
// @Description Filters the catalog against the user's cashflow profile and ranks survivors by interest rate
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MatchLoansRequest true "Requested amount and tenure"
// @Success 200 {array} scoring.LoanRecommendation
// @Failure 400 {object} map[string]string
// @Router /api/loan-matching/recommendations [post]
func (h *LoanHandler) Recommendations(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.MatchLoansRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	recs, err := h.loanService.Recommendations(c.Context(), userID, req.RequestedAmount, req.Tenure)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLoanRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Loan matching failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute recommendations",
		})
	}

	return c.JSON(recs)
}

// Apply godoc
// @Summary Submit a loan application
// @Tags loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LoanApplicationRequest true "Application"
// @Success 201 {object} dto.LoanApplicationResponse
// @Failure 400 {object} map[string]string
// @Router /api/loan-applications [post]
func (h *LoanHandler) Apply(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.LoanApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.loanService.Apply(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidLoanRequest) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Loan product not found",
			})
		}
		h.logger.Error("Loan application failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit application",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Applications godoc
// @Summary List the user's loan applications
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LoanApplicationResponse
// @Router /api/loan-applications [get]
func (h *LoanHandler) Applications(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	applications, err := h.loanService.Applications(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list applications", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch applications",
		})
	}

	return c.JSON(applications)
}
