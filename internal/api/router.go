package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/fintrack/finance-tracker/internal/api/handler"
	"github.com/fintrack/finance-tracker/internal/api/middleware"
	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/service"
	"github.com/fintrack/finance-tracker/internal/infrastructure/config"
	"github.com/fintrack/finance-tracker/internal/infrastructure/db/postgres"
	redisdb "github.com/fintrack/finance-tracker/internal/infrastructure/db/redis"
	healthhandlers "github.com/fintrack/finance-tracker/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("finance"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(pool)
	recordRepo := postgres.NewRecordRepository(pool)
	limiter := redisdb.NewLoginLimiter(rdb)

	authService := service.NewAuthService(accountRepo, limiter, cfg.JWTSecret, cfg.TokenTTL, log)
	recordService := service.NewRecordService(recordRepo, log)
	reportService := service.NewReportService(recordRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	incomeHandler := handler.NewRecordHandler(recordService, domain.KindIncome)
	expenseHandler := handler.NewRecordHandler(recordService, domain.KindExpense)
	reportHandler := handler.NewReportHandler(reportService)
	adminHandler := handler.NewAdminHandler(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Protected routes: the verifier runs before every handler that
	// touches financial records. ---
	v1 := e.Group("/v1", middleware.Auth(accountRepo, cfg.JWTSecret))

	v1.GET("/income", incomeHandler.List)
	v1.POST("/income", incomeHandler.Create)
	v1.PATCH("/income/:id", incomeHandler.Update)
	v1.DELETE("/income/:id", incomeHandler.Delete)

	v1.GET("/expenses", expenseHandler.List)
	v1.POST("/expenses", expenseHandler.Create)
	v1.PATCH("/expenses/:id", expenseHandler.Update)
	v1.DELETE("/expenses/:id", expenseHandler.Delete)

	v1.GET("/reports/summary", reportHandler.Summary)

	v1.GET("/admin/accounts", adminHandler.ListAccounts, middleware.AdminOnly())

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
