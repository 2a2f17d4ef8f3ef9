package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alok-48/GuruMitra/internal/analyzer"
	"github.com/alok-48/GuruMitra/internal/api"
	"github.com/alok-48/GuruMitra/internal/api/handlers"
	"github.com/alok-48/GuruMitra/internal/repository"
	"github.com/alok-48/GuruMitra/internal/rules"
	"github.com/alok-48/GuruMitra/internal/service"
	"github.com/alok-48/GuruMitra/pkg/auth"
	"github.com/alok-48/GuruMitra/pkg/config"
	"github.com/alok-48/GuruMitra/pkg/logger"
	"github.com/alok-48/GuruMitra/pkg/postgres"

	"go.uber.org/zap"
)

// @title GuruMitra API
// @version 1.0
// @description Backend for the GuruMitra caregiving assistant: documents, pension, help requests, health and government updates for retirees.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey Bearer
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
	appLogger.Info("Starting GuruMitra service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	otpRepo := repository.NewOTPRepository(db, appLogger)
	docRepo := repository.NewDocumentRepository(db, appLogger)
	pensionRepo := repository.NewPensionRepository(db, appLogger)
	medRepo := repository.NewMedicineRepository(db, appLogger)
	helpRepo := repository.NewHelpRepository(db, appLogger)
	notifRepo := repository.NewNotificationRepository(db, appLogger)
	updateRepo := repository.NewGovUpdateRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration)

	// Rule table and analyzers
	table := rules.NewTable()
	classifier := analyzer.NewDocumentClassifier(table)
	fraud := analyzer.NewFraudAnalyzer(table)
	intent := analyzer.NewIntentClassifier(table)
	simplifier := analyzer.NewPolicySimplifier(table)
	planner := analyzer.NewAdherenceReminderPlanner(medRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, otpRepo, jwtManager, &cfg.OTP, appLogger)
	docService := service.NewDocumentService(docRepo, classifier, cfg.Upload.Dir, appLogger)
	pensionService := service.NewPensionService(pensionRepo, helpRepo, fraud, intent, appLogger)
	helpService := service.NewHelpService(helpRepo, userRepo, notifRepo, intent, appLogger)
	healthService := service.NewHealthService(medRepo, planner, appLogger)
	updateService := service.NewUpdateService(updateRepo, simplifier, appLogger)
	notifService := service.NewNotificationService(notifRepo, appLogger)

	// Initialize handlers
	h := &api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, appLogger),
		Document:     handlers.NewDocumentHandler(docService, appLogger),
		Pension:      handlers.NewPensionHandler(pensionService, appLogger),
		Help:         handlers.NewHelpHandler(helpService, appLogger),
		Health:       handlers.NewHealthHandler(healthService, appLogger),
		Update:       handlers.NewUpdateHandler(updateService, appLogger),
		Notification: handlers.NewNotificationHandler(notifService, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, cfg.Upload.Dir, appLogger)

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
