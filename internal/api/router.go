package api

import (
	"github.com/alok-48/GuruMitra/internal/api/handlers"
	"github.com/alok-48/GuruMitra/pkg/auth"
	"github.com/alok-48/GuruMitra/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth         *handlers.AuthHandler
	Document     *handlers.DocumentHandler
	Pension      *handlers.PensionHandler
	Help         *handlers.HelpHandler
	Health       *handlers.HealthHandler
	Update       *handlers.UpdateHandler
	Notification *handlers.NotificationHandler
}

func SetupRouter(h *Handlers, jwtManager *auth.JWTManager, uploadDir string, appLogger *zap.Logger) *fiber.App {
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

	app.Static("/uploads", uploadDir)

	api := app.Group("/api")

	api.Get("/health-check", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := api.Group("/auth")
	authGroup.Post("/otp/send", h.Auth.SendOTP)
	authGroup.Post("/otp/verify", h.Auth.VerifyOTP)

	protected := middleware.AuthMiddleware(jwtManager, appLogger)

	authGroup.Get("/profile", protected, h.Auth.GetProfile)
	authGroup.Put("/profile", protected, h.Auth.UpdateProfile)

	documents := api.Group("/documents", protected)
	documents.Get("", h.Document.List)
	documents.Post("", h.Document.Upload)
	documents.Get("/deadlines", h.Document.Deadlines)
	documents.Get("/:id", h.Document.Get)
	documents.Delete("/:id", h.Document.Delete)

	pension := api.Group("/pension", protected)
	pension.Get("", h.Pension.Overview)
	pension.Get("/payments", h.Pension.PaymentHistory)
	pension.Post("/fraud-check", h.Pension.CheckFraud)
	pension.Post("/bank-help", h.Pension.BankHelp)

	help := api.Group("/help", protected)
	help.Post("", h.Help.Create)
	help.Get("", h.Help.ListMine)
	help.Post("/sos", h.Help.SOS)
	help.Get("/:id", h.Help.Get)
	help.Put("/:id/status", h.Help.UpdateStatus)

	health := api.Group("/health", protected)
	health.Get("/medicines", h.Health.Medicines)
	health.Post("/medicines", h.Health.AddMedicine)
	health.Post("/medicines/log", h.Health.LogIntake)
	health.Get("/alerts", h.Health.Alerts)

	updates := api.Group("/gov-updates", protected)
	updates.Get("", h.Update.List)
	updates.Post("/simplify", h.Update.Simplify)
	updates.Get("/:id", h.Update.Get)

	notifications := api.Group("/notifications", protected)
	notifications.Get("", h.Notification.List)
	notifications.Put("/read-all", h.Notification.MarkAllRead)
	notifications.Put("/:id/read", h.Notification.MarkRead)

	return app
}
