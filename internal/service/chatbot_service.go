package service

import (
	"context"
	"time"

	"finbridge/internal/dto"
	"finbridge/internal/repository"
	"finbridge/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatbotService struct {
	txRepo      *repository.TransactionRepository
	productRepo *repository.LoanProductRepository
	logger      *zap.Logger
}

func NewChatbotService(
	txRepo *repository.TransactionRepository,
	productRepo *repository.LoanProductRepository,
	logger *zap.Logger,
) *ChatbotService {
	return &ChatbotService{
		txRepo:      txRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Message answers a free-text question. The financial context is
// recomputed from the live transaction set on every call.
func (s *ChatbotService) Message(ctx context.Context, userID uuid.UUID, message string) (*dto.ChatResponse, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := scoring.BuildCashflowSummary(transactions)
	eligibility := scoring.ScoreEligibility(summary)
	chatCtx := scoring.ChatContext{
		Summary:     summary,
		Eligibility: eligibility,
		Health:      scoring.ScoreHealth(summary, eligibility),
		Products:    products,
	}

	response := scoring.Reply(message, chatCtx)

	s.logger.Debug("Chatbot reply",
		zap.String("user_id", userID.String()),
		zap.Int("message_len", len(message)),
	)

	return &dto.ChatResponse{
		Response:  response,
		Timestamp: time.Now().Format(time.RFC3339),
	}, nil
}
