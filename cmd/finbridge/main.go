package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finbridge/internal/api"
	"finbridge/internal/api/handlers"
	"finbridge/internal/repository"
	"finbridge/internal/service"
	"finbridge/pkg/auth"
	"finbridge/pkg/config"
	"finbridge/pkg/logger"
	"finbridge/pkg/postgres"

	"go.uber.org/zap"
)

// @title FinBridge API
// @version 1.0
// @description Cashflow-based loan eligibility and financial health scoring for micro-entrepreneurs

// @contact.name API Support
// @contact.email support@finbridge.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting FinBridge service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	productRepo := repository.NewLoanProductRepository(db, appLogger)
	applicationRepo := repository.NewLoanApplicationRepository(db, appLogger)
	scoreRepo := repository.NewScoreRepository(db, appLogger)
	riskRepo := repository.NewRiskFlagRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	txService := service.NewTransactionService(txRepo, appLogger)
	cashflowService := service.NewCashflowService(txRepo, appLogger)
	scoringService := service.NewScoringService(txRepo, scoreRepo, appLogger)
	loanService := service.NewLoanService(txRepo, productRepo, applicationRepo, appLogger)
	riskService := service.NewRiskService(txRepo, riskRepo, appLogger)
	chatbotService := service.NewChatbotService(txRepo, productRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	txHandler := handlers.NewTransactionHandler(txService, cashflowService, appLogger)
	scoringHandler := handlers.NewScoringHandler(scoringService, appLogger)
	loanHandler := handlers.NewLoanHandler(loanService, appLogger)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, appLogger)
	riskHandler := handlers.NewRiskHandler(riskService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		txHandler,
		scoringHandler,
		loanHandler,
		chatbotHandler,
		riskHandler,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
