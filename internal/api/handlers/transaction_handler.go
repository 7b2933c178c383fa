package handlers

import (
	"errors"

	"finbridge/internal/dto"
	"finbridge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	transactionService *service.TransactionService
	cashflowService    *service.CashflowService
	logger             *zap.Logger
}

func NewTransactionHandler(transactionService *service.TransactionService, cashflowService *service.CashflowService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		cashflowService:    cashflowService,
		logger:             logger,
	}
}

// List godoc
// @Summary List the user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	transactions, err := h.transactionService.List(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch transactions",
		})
	}

	return c.JSON(transactions)
}

// Create godoc
// @Summary Record a single transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.transactionService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransaction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create transaction",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// BulkUpload godoc
// @Summary Upload a batch of transactions
// @Description Validates every row first; the batch is stored atomically or not at all
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkUploadRequest true "Transactions"
// @Success 201 {object} dto.BulkUploadResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions/bulk [post]
func (h *TransactionHandler) BulkUpload(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.BulkUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.transactionService.BulkUpload(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidTransaction) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Bulk upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload transactions",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// CashflowSummary godoc
// @Summary Monthly cashflow aggregation for the user
// @Tags cashflow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} scoring.CashflowSummary
// @Failure 401 {object} map[string]string
// @Router /api/cashflow/summary [get]
func (h *TransactionHandler) CashflowSummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	summary, err := h.cashflowService.Summary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build cashflow summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build cashflow summary",
		})
	}

	return c.JSON(summary)
}
