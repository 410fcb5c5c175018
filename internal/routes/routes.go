package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/yaswanth810/safety-beacon/internal/config"
	"github.com/yaswanth810/safety-beacon/internal/handlers"
	"github.com/yaswanth810/safety-beacon/internal/middleware"
	"github.com/yaswanth810/safety-beacon/internal/realtime"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	hub *realtime.Hub,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	incidentHandler *handlers.IncidentHandler,
	sosHandler *handlers.SOSHandler,
	forumHandler *handlers.ForumHandler,
	legalHandler *handlers.LegalHandler,
	notifyHandler *handlers.NotifyHandler,
	roleHandler *handlers.RoleHandler,
	healthHandler *handlers.HealthHandler,
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

	// Legal catalog is public
	api.Get("/legal/resources", legalHandler.Search)

	// Auth — public, with a stricter limit: 10 req/min per IP
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

	// Protected routes (JWT required) - apply middleware per route so the
	// public routes above stay public
	jwt := middleware.JWTProtected(cfg)

	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Delete("/auth/account", jwt, authHandler.DeleteAccount)

	api.Get("/profile", jwt, profileHandler.Get)
	api.Put("/profile", jwt, profileHandler.Update)

	api.Post("/incidents", jwt, incidentHandler.Create)
	api.Get("/incidents", jwt, incidentHandler.List)
	api.Get("/incidents/:id", jwt, incidentHandler.Get)
	api.Put("/incidents/:id", jwt, incidentHandler.Update)
	api.Put("/incidents/:id/status", jwt, incidentHandler.SetStatus)

	api.Post("/sos", jwt, sosHandler.Activate)
	api.Get("/sos/active", jwt, sosHandler.Active)
	api.Get("/sos/history", jwt, sosHandler.History)
	api.Put("/sos/:id/deactivate", jwt, sosHandler.Deactivate)

	// Forum: reads and upvotes are public, writes need an account
	api.Get("/forum/posts", forumHandler.ListPosts)
	api.Get("/forum/posts/:id", forumHandler.GetPost)
	api.Get("/forum/posts/:id/comments", forumHandler.ListComments)
	api.Post("/forum/posts/:id/upvote", forumHandler.Upvote)
	api.Post("/forum/posts", jwt, forumHandler.CreatePost)
	api.Put("/forum/posts/:id", jwt, forumHandler.UpdatePost)
	api.Delete("/forum/posts/:id", jwt, forumHandler.DeletePost)
	api.Post("/forum/posts/:id/comments", jwt, forumHandler.CreateComment)

	// Notification dispatch accepts POST only
	api.Post("/notify/incident", jwt, notifyHandler.NotifyIncident)
	api.Post("/notify/sos", jwt, notifyHandler.NotifySOS)
	api.All("/notify/incident", notifyHandler.MethodNotAllowed)
	api.All("/notify/sos", notifyHandler.MethodNotAllowed)

	api.Get("/users/:id/roles", jwt, roleHandler.Get)

	// Change feed over WebSocket
	api.Get("/realtime", realtime.UpgradeRequired, realtime.Handler(hub))

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", jwt, middleware.AdminRequired(db, cfg))
	admin.Get("/sos/active", sosHandler.ActiveForAll)
	admin.Post("/roles", roleHandler.Assign)
	admin.Delete("/roles", roleHandler.Revoke)
	admin.Post("/legal/resources", legalHandler.Create)
	admin.Put("/legal/resources/:id", legalHandler.Update)
	admin.Delete("/legal/resources/:id", legalHandler.Delete)
}
