package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/zarbiti/zarbiti-backend/internal/config"
	"github.com/zarbiti/zarbiti-backend/internal/handlers"
	"github.com/zarbiti/zarbiti-backend/internal/middleware"
	"github.com/zarbiti/zarbiti-backend/internal/modules"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	workspaceHandler *handlers.WorkspaceHandler,
	authHandler *handlers.AuthHandler,
	orderHandler *handlers.OrderHandler,
	healthHandler *handlers.HealthHandler,
	pageModules []modules.Module,
	deps *modules.Deps,
) {
	// Workspace pages (session-gated, not token-gated)
	app.Get("/", workspaceHandler.Home)
	app.Get("/login", workspaceHandler.LoginPage)
	app.Post("/login", workspaceHandler.Login)
	app.Post("/logout", workspaceHandler.Logout)
	app.Get("/users", workspaceHandler.Users)

	for _, m := range pageModules {
		m.RegisterPages(app, deps)
	}

	// Remote API
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Registration/login are public; stricter limit: 10 req/min per IP
	users := api.Group("/users")
	users.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	users.Post("/register", authHandler.Register)
	users.Post("/login", authHandler.Login)
	users.Post("/refresh", authHandler.Refresh)
	users.Post("/logout", authHandler.Logout)

	// Admin user listing (token + admin role)
	api.Get("/users", middleware.JWTProtected(cfg), middleware.AdminRequired(db), authHandler.ListUsers)

	// Orders require a valid bearer token
	orders := api.Group("/orders", middleware.JWTProtected(cfg))
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/stats", orderHandler.Stats)
	orders.Get("/:id", orderHandler.Get)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
}
