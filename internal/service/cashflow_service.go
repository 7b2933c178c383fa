package service

import (
	"context"

	"finbridge/internal/repository"
	"finbridge/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CashflowService struct {
	txRepo *repository.TransactionRepository
	logger *zap.Logger
}

func NewCashflowService(txRepo *repository.TransactionRepository, logger *zap.Logger) *CashflowService {
	return &CashflowService{
		txRepo: txRepo,
		logger: logger,
	}
}

// Summary recomputes the cashflow summary from the user's full current
// transaction set. Nothing is cached: concurrent writes are safe because
// every read starts from the committed store state.
func (s *CashflowService) Summary(ctx context.Context, userID uuid.UUID) (scoring.CashflowSummary, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return scoring.CashflowSummary{}, err
	}
	return scoring.BuildCashflowSummary(transactions), nil
}
