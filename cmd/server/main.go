package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fintrack/internal/config"
	"fintrack/internal/database"
	"fintrack/internal/handlers"
	"fintrack/internal/middleware"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const rateLimitBurst = 10

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	budgetRepo := repositories.NewBudgetRepository(db.DB)
	goalRepo := repositories.NewGoalRepository(db.DB)
	achievementRepo := repositories.NewAchievementRepository(db.DB)

	metrics := services.NewPrometheusMetrics()
	transactionService := services.NewTransactionService(transactionRepo, categoryRepo, metrics)
	categoryService := services.NewCategoryService(categoryRepo)
	budgetTracker := services.NewBudgetTracker(budgetRepo, transactionRepo, categoryRepo, metrics)
	goalTracker := services.NewGoalTracker(goalRepo, categoryRepo, achievementRepo, metrics)
	reportBuilder := services.NewReportBuilder(transactionRepo, budgetTracker, goalTracker, metrics, cfg.Report.MaxMonths)

	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		seeder := services.NewSampleDataGenerator(userRepo, categoryRepo, transactionRepo, budgetRepo, goalRepo, uint64(time.Now().UnixNano()))
		if _, err := seeder.Generate(time.Now().UTC()); err != nil {
			slog.Warn("sample data seeding failed", "error", err)
		}
	}

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	budgetHandler := handlers.NewBudgetHandler(budgetTracker)
	goalHandler := handlers.NewGoalHandler(goalTracker)
	reportHandler := handlers.NewReportHandler(reportBuilder, cfg.Report.DefaultMonths)
	healthHandler := handlers.NewHealthHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiter(cfg.Report.RateLimitPerSecond, rateLimitBurst))

	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireUser(cfg.Auth.Secret, cfg.Auth.Issuer, userRepo))

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/categories", categoryHandler.ListCategories)
	api.POST("/categories", categoryHandler.CreateCategory)
	api.GET("/categories/:id", categoryHandler.GetCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)
	api.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	api.GET("/budgets", budgetHandler.ListBudgets)
	api.POST("/budgets", budgetHandler.CreateBudget)
	api.PUT("/budgets/:id", budgetHandler.UpdateBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals/:id", goalHandler.GetGoal)
	api.PUT("/goals/:id", goalHandler.UpdateGoal)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)
	api.POST("/goals/:id/contributions", goalHandler.AddContribution)
	api.GET("/achievements", goalHandler.ListAchievements)

	api.GET("/reports/income-expense", reportHandler.IncomeExpenseReport)
	api.GET("/dashboard", reportHandler.Dashboard)

	server := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
