package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/taskmanager/backend/internal/config"
	"github.com/taskmanager/backend/internal/handlers"
	"github.com/taskmanager/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	taskHandler *handlers.TaskHandler,
	healthHandler *handlers.HealthHandler,
	configHandler *handlers.ConfigHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/config", configHandler.GetConfig)

	// Auth endpoints get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/signup", authLimiter, authHandler.Signup)
	api.Post("/login", authLimiter, authHandler.Login)
	api.Get("/users", authHandler.ListUsers)

	// Only creation carries the guard; list/get/update/delete are open,
	// matching the API this replaces.
	tasks := api.Group("/tasks")
	tasks.Get("/", taskHandler.List)
	tasks.Get("/export", taskHandler.ExportCSV)
	tasks.Post("/", middleware.JWTProtected(cfg), taskHandler.Create)
	tasks.Get("/:id", taskHandler.Get)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)

	// Admin config management
	api.Put("/config/:key", middleware.JWTProtected(cfg), middleware.AdminRequired(), configHandler.SetConfigKey)
}
