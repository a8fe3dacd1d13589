package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/lifeline-connect/lifeline-backend/internal/config"
	"github.com/lifeline-connect/lifeline-backend/internal/handlers"
	"github.com/lifeline-connect/lifeline-backend/internal/middleware"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
)

// Setup wires the route table. Policy: every mutating route requires a
// verified identity; aggregate listings require admin or volunteer;
// blog publication control requires admin. The public surface is
// registration, the donor directory, pending requests and published
// blogs.
func Setup(
	app *fiber.App,
	cfg *config.Config,
	roles middleware.RoleResolver,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	donationHandler *handlers.DonationHandler,
	blogHandler *handlers.BlogHandler,
	healthHandler *handlers.HealthHandler,
) {
	protected := middleware.Protected(cfg)
	adminOnly := middleware.RoleRequired(roles, models.RoleAdmin)
	adminOrVolunteer := middleware.RoleRequired(roles, models.RoleAdmin, models.RoleVolunteer)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LifeLine Connect API")
	})
	app.Get("/health", healthHandler.Check)

	// Auth. Stricter rate limit than the rest of the API.
	auth := app.Group("/auth", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", protected, authHandler.Logout)

	// Users
	app.Post("/users", userHandler.Register)
	app.Get("/users/role/:email", protected, userHandler.GetRole)
	app.Get("/users/:email", protected, userHandler.GetByEmail)
	app.Patch("/users/:email", protected, userHandler.UpdateProfile)
	app.Patch("/users/:id/status", protected, adminOrVolunteer, userHandler.SetStatus)
	app.Patch("/users/:id/role", protected, adminOnly, userHandler.SetRole)
	app.Get("/all-users", protected, adminOrVolunteer, userHandler.List)
	app.Get("/all-users-count", protected, adminOrVolunteer, userHandler.Count)
	app.Get("/search-users", userHandler.SearchDonors)

	// Donation requests
	app.Post("/donation-requests", protected, donationHandler.Create)
	app.Get("/donation-requests/recent/:email", protected, donationHandler.Recent)
	app.Get("/donation-requests/:id", protected, donationHandler.GetByID)
	app.Patch("/donation-requests/:id", protected, donationHandler.Update)
	app.Delete("/donation-requests/:id", protected, donationHandler.Delete)
	app.Patch("/donations/update-status/:id", protected, donationHandler.UpdateStatus)
	app.Get("/all-donations", protected, donationHandler.List)
	app.Get("/all-donation-count", protected, adminOrVolunteer, donationHandler.Count)
	app.Get("/pending-donations", donationHandler.Pending)

	// Blogs
	app.Post("/blogs", protected, adminOrVolunteer, blogHandler.Create)
	app.Get("/blogs", protected, adminOrVolunteer, blogHandler.List)
	app.Get("/published-blogs", blogHandler.Published)
	app.Get("/published-blogs/:id", blogHandler.PublishedByID)
	app.Patch("/blogs/:id/status", protected, adminOnly, blogHandler.SetStatus)
	app.Delete("/blogs/:id", protected, adminOnly, blogHandler.Delete)
}
