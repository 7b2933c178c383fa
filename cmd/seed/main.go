package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"finbridge/internal/models"
	"finbridge/internal/repository"
	"finbridge/pkg/auth"
	"finbridge/pkg/config"
	"finbridge/pkg/logger"
	"finbridge/pkg/postgres"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	productRepo := repository.NewLoanProductRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	borrower, err := seedUsers(ctx, userRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed users", zap.Error(err))
	}

	if err := seedTransactions(ctx, txRepo, borrower.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed transactions", zap.Error(err))
	}

	if err := seedLoanProducts(ctx, productRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed loan products", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

// seedUsers creates a demo borrower and admin, skipping any that already exist.
func seedUsers(ctx context.Context, userRepo *repository.UserRepository, appLogger *zap.Logger) (*models.User, error) {
	users := []struct {
		name     string
		email    string
		password string
		role     models.UserRole
		business string
		sector   string
		location string
	}{
		{"Priya Sharma", "priya@demo.finbridge.dev", "demo1234", models.RoleBorrower, "Sharma Textiles", "Retail", "Jaipur"},
		{"Admin", "admin@demo.finbridge.dev", "admin1234", models.RoleAdmin, "", "", ""},
	}

	var borrower *models.User
	for _, u := range users {
		existing, err := userRepo.GetByEmail(ctx, u.email)
		if err == nil {
			appLogger.Info("User already exists, skipping", zap.String("email", u.email))
			if u.role == models.RoleBorrower {
				borrower = existing
			}
			continue
		}

		hash, err := auth.HashPassword(u.password)
		if err != nil {
			return nil, err
		}

		user := &models.User{
			ID:           uuid.New(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		if u.role == models.RoleBorrower {
			profile := &models.BusinessProfile{
				ID:           uuid.New(),
				UserID:       user.ID,
				BusinessName: u.business,
				Sector:       u.sector,
				Location:     u.location,
			}
			if err := userRepo.CreateBusinessProfile(ctx, profile); err != nil {
				return nil, err
			}
			borrower = user
		}

		appLogger.Info("Created user", zap.String("email", u.email), zap.String("role", string(u.role)))
	}

	return borrower, nil
}

// seedTransactions generates six months of demo cashflow for the borrower:
// steady sales income with mild growth and recurring business expenses.
func seedTransactions(ctx context.Context, txRepo *repository.TransactionRepository, userID uuid.UUID, appLogger *zap.Logger) error {
	existing, err := txRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Transactions already seeded, skipping", zap.Int("count", len(existing)))
		return nil
	}

	rng := rand.New(rand.NewSource(42))
	now := time.Now()
	var transactions []*models.Transaction

	for monthsAgo := 6; monthsAgo >= 1; monthsAgo-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -monthsAgo, 0)
		growth := float64(6-monthsAgo) * 1500

		// Weekly sales income
		for week := 0; week < 4; week++ {
			transactions = append(transactions, &models.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				Date:        monthStart.AddDate(0, 0, week*7+2),
				Amount:      9000 + growth/4 + float64(rng.Intn(2000)),
				Type:        models.TransactionIncome,
				Category:    "Sales",
				Description: "Weekly sales revenue",
			})
		}

		// Recurring expenses
		expenses := []struct {
			day      int
			amount   float64
			category string
			desc     string
		}{
			{1, 8000, "Rent", "Shop rent"},
			{5, 4500 + float64(rng.Intn(1500)), "Inventory", "Stock purchase"},
			{12, 1200, "Utilities", "Electricity and water"},
			{20, 2500, "Wages", "Part-time helper"},
		}
		for _, e := range expenses {
			transactions = append(transactions, &models.Transaction{
				ID:          uuid.New(),
				UserID:      userID,
				Date:        monthStart.AddDate(0, 0, e.day-1),
				Amount:      e.amount,
				Type:        models.TransactionExpense,
				Category:    e.category,
				Description: e.desc,
			})
		}
	}

	if err := txRepo.CreateBatch(ctx, transactions); err != nil {
		return err
	}

	appLogger.Info("Seeded transactions", zap.Int("count", len(transactions)))
	return nil
}

// seedLoanProducts loads the demo lender catalog.
func seedLoanProducts(ctx context.Context, productRepo *repository.LoanProductRepository, appLogger *zap.Logger) error {
	existing, err := productRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		appLogger.Info("Loan products already seeded, skipping", zap.Int("count", len(existing)))
		return nil
	}

	products := []*models.LoanProduct{
		{LenderName: "MicroFin Bank", MinAmount: 50000, MaxAmount: 500000, InterestRate: 12.5, MinTenure: 12, MaxTenure: 60, MinIncome: 20000, MaxDebtRatio: 0.4, MinHealthScore: 50},
		{LenderName: "SME Credit Union", MinAmount: 100000, MaxAmount: 1000000, InterestRate: 11.0, MinTenure: 24, MaxTenure: 84, MinIncome: 40000, MaxDebtRatio: 0.35, MinHealthScore: 60},
		{LenderName: "Business Growth NBFC", MinAmount: 25000, MaxAmount: 300000, InterestRate: 14.0, MinTenure: 6, MaxTenure: 36, MinIncome: 15000, MaxDebtRatio: 0.45, MinHealthScore: 40},
		{LenderName: "QuickCash Lenders", MinAmount: 10000, MaxAmount: 200000, InterestRate: 15.5, MinTenure: 6, MaxTenure: 24, MinIncome: 10000, MaxDebtRatio: 0.5, MinHealthScore: 35},
		{LenderName: "Prime Business Finance", MinAmount: 200000, MaxAmount: 2000000, InterestRate: 10.0, MinTenure: 36, MaxTenure: 120, MinIncome: 60000, MaxDebtRatio: 0.3, MinHealthScore: 70},
	}

	for _, p := range products {
		p.ID = uuid.New()
		if err := productRepo.Create(ctx, p); err != nil {
			return err
		}
	}

	appLogger.Info("Seeded loan products", zap.Int("count", len(products)))
	return nil
}
