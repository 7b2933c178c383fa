package service

import (
	"context"

	"finbridge/internal/models"
	"finbridge/internal/repository"
	"finbridge/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScoringService struct {
	txRepo    *repository.TransactionRepository
	scoreRepo *repository.ScoreRepository
	logger    *zap.Logger
}

func NewScoringService(
	txRepo *repository.TransactionRepository,
	scoreRepo *repository.ScoreRepository,
	logger *zap.Logger,
) *ScoringService {
	return &ScoringService{
		txRepo:    txRepo,
		scoreRepo: scoreRepo,
		logger:    logger,
	}
}

// Eligibility scores the user from their full transaction history and
// records the result.
func (s *ScoringService) Eligibility(ctx context.Context, userID uuid.UUID) (scoring.EligibilityResult, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return scoring.EligibilityResult{}, err
	}

	result := scoring.ScoreEligibility(scoring.BuildCashflowSummary(transactions))

	if err := s.scoreRepo.RecordEligibility(ctx, userID, result.Score, string(result.RiskLevel)); err != nil {
		return scoring.EligibilityResult{}, err
	}

	s.logger.Info("Eligibility scored",
		zap.String("user_id", userID.String()),
		zap.Int("score", result.Score),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	return result, nil
}

// Health computes the composite health score on top of a fresh
// eligibility run and records it.
func (s *ScoringService) Health(ctx context.Context, userID uuid.UUID) (scoring.HealthResult, error) {
	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return scoring.HealthResult{}, err
	}

	summary := scoring.BuildCashflowSummary(transactions)
	eligibility := scoring.ScoreEligibility(summary)
	result := scoring.ScoreHealth(summary, eligibility)

	if err := s.scoreRepo.RecordEligibility(ctx, userID, eligibility.Score, string(eligibility.RiskLevel)); err != nil {
		return scoring.HealthResult{}, err
	}
	if err := s.scoreRepo.RecordHealth(ctx, userID, result.Score); err != nil {
		return scoring.HealthResult{}, err
	}

	s.logger.Info("Health scored",
		zap.String("user_id", userID.String()),
		zap.Int("score", result.Score),
		zap.String("category", result.Category),
	)

	return result, nil
}

// Latest returns the newest persisted score snapshot without recomputing.
func (s *ScoringService) Latest(ctx context.Context, userID uuid.UUID) (*models.ModelScore, error) {
	return s.scoreRepo.Latest(ctx, userID)
}
