package api

import (
	"finbridge/docs"
	"finbridge/internal/api/handlers"
	"finbridge/pkg/auth"
	"finbridge/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	txHandler *handlers.TransactionHandler,
	scoringHandler *handlers.ScoringHandler,
	loanHandler *handlers.LoanHandler,
	chatbotHandler *handlers.ChatbotHandler,
	riskHandler *handlers.RiskHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	protected.Get("/transactions", txHandler.List)
	protected.Post("/transactions", txHandler.Create)
	protected.Post("/transactions/bulk", txHandler.BulkUpload)
	protected.Get("/cashflow/summary", txHandler.CashflowSummary)

	ml := protected.Group("/ml")
	ml.Get("/eligibility-score", scoringHandler.EligibilityScore)
	ml.Get("/health-score", scoringHandler.HealthScore)
	ml.Get("/scores/latest", scoringHandler.LatestScores)

	protected.Get("/loan-products", loanHandler.Products)
	protected.Post("/loan-matching/recommendations", loanHandler.Recommendations)
	protected.Post("/loan-applications", loanHandler.Apply)
	protected.Get("/loan-applications", loanHandler.Applications)

	protected.Post("/chatbot/message", chatbotHandler.Message)

	// Fraud routes require the ADMIN role
	fraud := protected.Group("/fraud", middleware.AdminOnly(appLogger))
	fraud.Get("/flags", riskHandler.Flags)
	fraud.Post("/analyze/:userId", riskHandler.Analyze)

	return app
}
