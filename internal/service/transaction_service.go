package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finbridge/internal/dto"
	"finbridge/internal/models"
	"finbridge/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrInvalidTransaction = errors.New("invalid transaction")

type TransactionService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(txRepo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID) ([]dto.TransactionResponse, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, toTransactionResponse(tx))
	}
	return responses, nil
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.fromRequest(userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction recorded",
		zap.String("user_id", userID.String()),
		zap.String("type", string(tx.Type)),
		zap.Float64("amount", tx.Amount),
	)

	resp := toTransactionResponse(*tx)
	return &resp, nil
}

// BulkUpload inserts all rows or none; a single malformed row rejects
// the whole batch before anything is written.
func (s *TransactionService) BulkUpload(ctx context.Context, userID uuid.UUID, req *dto.BulkUploadRequest) (*dto.BulkUploadResponse, error) {
	transactions := make([]*models.Transaction, 0, len(req.Transactions))
	for i := range req.Transactions {
		tx, err := s.fromRequest(userID, &req.Transactions[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		transactions = append(transactions, tx)
	}

	if err := s.txRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, err
	}

	s.logger.Info("Bulk upload completed",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(transactions)),
	)

	return &dto.BulkUploadResponse{Success: true, Count: len(transactions)}, nil
}

func (s *TransactionService) fromRequest(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	if req.Amount < 0 {
		return nil, fmt.Errorf("%w: amount must be non-negative", ErrInvalidTransaction)
	}

	txType := models.TransactionType(req.Type)
	if txType != models.TransactionIncome && txType != models.TransactionExpense {
		return nil, fmt.Errorf("%w: type must be income or expense", ErrInvalidTransaction)
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidTransaction, req.Date)
		}
		date = parsed
	}

	category := req.Category
	if category == "" {
		category = "General"
	}

	return &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Amount:      req.Amount,
		Type:        txType,
		Category:    sanitizeUTF8(category),
		Description: sanitizeUTF8(req.Description),
		CreatedAt:   time.Now(),
	}, nil
}

func toTransactionResponse(tx models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Date:        tx.Date.Format("2006-01-02"),
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Category:    tx.Category,
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
	}
}
