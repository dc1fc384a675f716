package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/zarbiti/zarbiti-backend/internal/auth"
	"github.com/zarbiti/zarbiti-backend/internal/config"
	"github.com/zarbiti/zarbiti-backend/internal/dashboard"
	"github.com/zarbiti/zarbiti-backend/internal/database"
	"github.com/zarbiti/zarbiti-backend/internal/directory"
	"github.com/zarbiti/zarbiti-backend/internal/handlers"
	"github.com/zarbiti/zarbiti-backend/internal/logging"
	"github.com/zarbiti/zarbiti-backend/internal/middleware"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
	"github.com/zarbiti/zarbiti-backend/internal/modules/orders"
	"github.com/zarbiti/zarbiti-backend/internal/modules/parcels"
	"github.com/zarbiti/zarbiti-backend/internal/modules/payments"
	"github.com/zarbiti/zarbiti-backend/internal/modules/production"
	"github.com/zarbiti/zarbiti-backend/internal/routes"
	"github.com/zarbiti/zarbiti-backend/internal/services"
	"github.com/zarbiti/zarbiti-backend/internal/session"
	"github.com/zarbiti/zarbiti-backend/internal/state"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Fixed user directory (demo seed, optional file override)
	users, err := directory.LoadFromFile(cfg.UsersConfigPath)
	if err != nil {
		slog.Error("failed to load user directory", "path", cfg.UsersConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("user directory loaded", "users", len(users.All()))

	// Workspace state store
	store, err := state.Open(cfg.StatePath)
	if err != nil {
		slog.Error("failed to open workspace state", "path", cfg.StatePath, "error", err)
		os.Exit(1)
	}

	// Database; schema must be in place before the listener binds
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// Persist ERROR+ logs to the database alongside stdout
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewTeeHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log retention (30 days)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Workspace wiring
	sessions := session.NewRepository(store)
	gate := auth.NewGate(users, sessions)
	aggregator := dashboard.NewAggregator(store)
	deps := &modules.Deps{Store: store, Gate: gate, Currency: cfg.Currency}

	pageModules := []modules.Module{
		orders.New(),
		production.New(),
		parcels.New(),
		payments.New(),
	}

	// Remote API services and handlers
	authService := services.NewAuthService(database.DB, cfg)
	orderService := services.NewOrderService(database.DB)

	workspaceHandler := handlers.NewWorkspaceHandler(gate, users, aggregator, cfg.Currency)
	authHandler := handlers.NewAuthHandler(authService)
	orderHandler := handlers.NewOrderHandler(orderService)
	healthHandler := handlers.NewHealthHandler()

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	routes.Setup(app, cfg, database.DB, workspaceHandler, authHandler, orderHandler, healthHandler, pageModules, deps)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
