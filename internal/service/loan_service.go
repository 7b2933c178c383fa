package service

import (
	"context"
	"errors"
	"time"

	"finbridge/internal/dto"
	"finbridge/internal/models"
	"finbridge/internal/repository"
	"finbridge/internal/scoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidLoanRequest = errors.New("requested amount and tenure must be positive")
	ErrProductNotFound    = errors.New("loan product not found")
)

type LoanService struct {
	txRepo      *repository.TransactionRepository
	productRepo *repository.LoanProductRepository
	appRepo     *repository.LoanApplicationRepository
	logger      *zap.Logger
}

func NewLoanService(
	txRepo *repository.TransactionRepository,
	productRepo *repository.LoanProductRepository,
	appRepo *repository.LoanApplicationRepository,
	logger *zap.Logger,
) *LoanService {
	return &LoanService{
		txRepo:      txRepo,
		productRepo: productRepo,
		appRepo:     appRepo,
		logger:      logger,
	}
}

func (s *LoanService) Products(ctx context.Context) ([]dto.LoanProductResponse, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LoanProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, dto.LoanProductResponse{
			ID:             p.ID.String(),
			LenderName:     p.LenderName,
			MinAmount:      p.MinAmount,
			MaxAmount:      p.MaxAmount,
			InterestRate:   p.InterestRate,
			MinTenure:      p.MinTenure,
			MaxTenure:      p.MaxTenure,
			MinIncome:      p.MinIncome,
			MaxDebtRatio:   p.MaxDebtRatio,
			MinHealthScore: p.MinHealthScore,
		})
	}
	return responses, nil
}

// Recommendations recomputes the user's summary and health score from
// the current transaction snapshot and matches the catalog against the
// request. An empty result is a valid no-match outcome.
func (s *LoanService) Recommendations(ctx context.Context, userID uuid.UUID, requestedAmount float64, tenure int) ([]scoring.LoanRecommendation, error) {
	if requestedAmount <= 0 || tenure <= 0 {
		return nil, ErrInvalidLoanRequest
	}

	transactions, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	summary := scoring.BuildCashflowSummary(transactions)
	health := scoring.ScoreHealth(summary, scoring.ScoreEligibility(summary))

	recommendations := scoring.MatchLoans(summary, health, requestedAmount, tenure, products)

	s.logger.Info("Loan matching completed",
		zap.String("user_id", userID.String()),
		zap.Float64("requested_amount", requestedAmount),
		zap.Int("tenure", tenure),
		zap.Int("matches", len(recommendations)),
	)

	return recommendations, nil
}

func (s *LoanService) Apply(ctx context.Context, userID uuid.UUID, req *dto.LoanApplicationRequest) (*dto.LoanApplicationResponse, error) {
	if req.RequestedAmount <= 0 || req.Tenure <= 0 {
		return nil, ErrInvalidLoanRequest
	}

	productID, err := uuid.Parse(req.LoanProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, ErrProductNotFound
	}

	app := &models.LoanApplication{
		ID:              uuid.New(),
		UserID:          userID,
		LoanProductID:   product.ID,
		RequestedAmount: req.RequestedAmount,
		Tenure:          req.Tenure,
		Status:          models.ApplicationPending,
		CreatedAt:       time.Now(),
	}

	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, err
	}

	return &dto.LoanApplicationResponse{
		ID:              app.ID.String(),
		LoanProductID:   product.ID.String(),
		LenderName:      product.LenderName,
		InterestRate:    product.InterestRate,
		RequestedAmount: app.RequestedAmount,
		Tenure:          app.Tenure,
		Status:          string(app.Status),
		CreatedAt:       app.CreatedAt.Format(time.RFC3339),
	}, nil
}

func (s *LoanService) Applications(ctx context.Context, userID uuid.UUID) ([]dto.LoanApplicationResponse, error) {
	applications, err := s.appRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.LoanApplicationResponse, 0, len(applications))
	for _, app := range applications {
		responses = append(responses, dto.LoanApplicationResponse{
			ID:              app.ID.String(),
			LoanProductID:   app.LoanProductID.String(),
			LenderName:      app.LenderName,
			InterestRate:    app.InterestRate,
			RequestedAmount: app.RequestedAmount,
			Tenure:          app.Tenure,
			Status:          string(app.Status),
			CreatedAt:       app.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses, nil
}
