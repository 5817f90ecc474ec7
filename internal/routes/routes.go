package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/naijamingles/safety-backend/internal/config"
	"github.com/naijamingles/safety-backend/internal/handlers"
	"github.com/naijamingles/safety-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	isAdmin middleware.AdminPredicate,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	safetyHandler *handlers.SafetyHandler,
	panicHandler *handlers.PanicHandler,
	moderationHandler *handlers.ModerationHandler,
	adminHandler *handlers.AdminHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (public)
	api.Get("/health", healthHandler.Check)

	// Auth with a stricter per-IP limit
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Safety endpoints (JWT required)
	safety := api.Group("/safety", middleware.JWTProtected(cfg))
	safety.Post("/plans", safetyHandler.CreatePlan)
	safety.Get("/plans", safetyHandler.ListPlans)
	safety.Post("/checkins", safetyHandler.RecordCheckIn)
	safety.Post("/contacts", safetyHandler.AddContact)
	safety.Get("/contacts", safetyHandler.ListContacts)
	safety.Post("/reviews", safetyHandler.CreateReview)
	safety.Post("/panic", panicHandler.Trigger)

	// Moderation (JWT required)
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.CreateReport)
	api.Post("/blocks", middleware.JWTProtected(cfg), moderationHandler.BlockUser)
	api.Delete("/blocks/:id", middleware.JWTProtected(cfg), moderationHandler.UnblockUser)
	api.Get("/blocks/:id", middleware.JWTProtected(cfg), moderationHandler.BlockStatus)

	// Admin triage (JWT + allow-list)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(isAdmin))
	admin.Get("/safety/panics", adminHandler.ListPanics)
	admin.Post("/safety/panics/:id/resolve", adminHandler.ResolvePanic)
	admin.Get("/safety/checkins", adminHandler.ListCheckIns)
	admin.Get("/moderation/reports", adminHandler.ListReports)
	admin.Put("/moderation/reports/:id", adminHandler.SetReportStatus)
}
