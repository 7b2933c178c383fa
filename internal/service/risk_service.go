package service

import (
	"context"
	"time"

	"finbridge/internal/dto"
	"finbridge/internal/models"
	"finbridge/internal/repository"
	"finbridge/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RiskService struct {
	txRepo   *repository.TransactionRepository
	flagRepo *repository.RiskFlagRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewRiskService(
	txRepo *repository.TransactionRepository,
	flagRepo *repository.RiskFlagRepository,
	logger *zap.Logger,
) *RiskService {
	return &RiskService{
		txRepo:   txRepo,
		flagRepo: flagRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze runs the risk heuristics over the user's recent transactions
// and appends the outcome to the flag history. Re-running on the same
// snapshot produces the same verdict in a new record.
func (s *RiskService) Analyze(ctx context.Context, userID uuid.UUID) (*dto.RiskFlagResponse, error) {
	transactions, err := s.txRepo.ListRecent(ctx, userID, scoring.RiskWindowSize)
	if err != nil {
		return nil, err
	}

	level, reasons := scoring.AnalyzeRisk(transactions, s.now())

	flag := &models.RiskFlag{
		ID:        uuid.New(),
		UserID:    userID,
		RiskLevel: string(level),
		Reasons:   reasons,
		CreatedAt: s.now(),
	}

	if err := s.flagRepo.Append(ctx, flag); err != nil {
		return nil, err
	}

	s.logger.Info("Risk analysis recorded",
		zap.String("user_id", userID.String()),
		zap.String("risk_level", flag.RiskLevel),
		zap.Strings("reasons", flag.Reasons),
	)

	return toRiskFlagResponse(flag), nil
}

func (s *RiskService) Flags(ctx context.Context) ([]dto.RiskFlagResponse, error) {
	flags, err := s.flagRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RiskFlagResponse, 0, len(flags))
	for i := range flags {
		responses = append(responses, *toRiskFlagResponse(&flags[i]))
	}
	return responses, nil
}

func toRiskFlagResponse(flag *models.RiskFlag) *dto.RiskFlagResponse {
	return &dto.RiskFlagResponse{
		ID:        flag.ID.String(),
		UserID:    flag.UserID.String(),
		RiskLevel: flag.RiskLevel,
		Reasons:   flag.Reasons,
		CreatedAt: flag.CreatedAt.Format(time.RFC3339),
	}
}
