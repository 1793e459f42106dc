// Package routes binds the HTTP surface to the controllers. Guard
// middleware composes per group: token-gated routes chain RequireAuth,
// admin routes chain RequireAuth then RequireAdmin.
package routes

import (
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/app/controllers"
	"bistro/app/models"
	"bistro/app/repositories"
	"bistro/app/services"
	"bistro/pkg/auth"
	"bistro/pkg/middleware"
	"bistro/pkg/payments"
	"bistro/pkg/router"
)

// Deps carries the external resources the API needs. Everything else is
// constructed here.
type Deps struct {
	DB      *mongo.Database
	Intents payments.IntentCreator

	// Notify is called after a successful order finalization with the
	// recorded payment. May be nil.
	Notify func(models.Payment)
}

// RegisterAPI wires repositories, services, and controllers, then mounts
// every route.
func RegisterAPI(r *router.Router, d Deps) {
	userRepo := repositories.NewUserRepository(d.DB)
	menuRepo := repositories.NewMenuRepository(d.DB)
	reviewRepo := repositories.NewReviewRepository(d.DB)
	cartRepo := repositories.NewCartRepository(d.DB)
	paymentRepo := repositories.NewPaymentRepository(d.DB)

	authController := controllers.NewAuthController()
	userController := controllers.NewUserController(services.NewUserService(userRepo))
	menuController := controllers.NewMenuController(services.NewMenuService(menuRepo))
	reviewController := controllers.NewReviewController(services.NewReviewService(reviewRepo))
	cartController := controllers.NewCartController(services.NewCartService(cartRepo))
	orderController := controllers.NewOrderController(
		services.NewOrderService(paymentRepo, cartRepo, d.Notify), d.Intents)
	statsController := controllers.NewStatsController(
		services.NewStatsService(userRepo, menuRepo, paymentRepo))

	requireAuth := middleware.RequireAuth(auth.Verify)
	requireAdmin := middleware.RequireAdmin(userRepo)

	api := r.Group("/api/v1")
	protected := api.Group("", requireAuth)
	admin := api.Group("", requireAuth, requireAdmin)

	// tokens and registration
	api.Post("/jwt", "auth.token", authController.Token)
	api.Post("/users", "users.register", userController.Register)
	protected.Get("/admin", "users.admin-check", userController.AdminCheck)

	// user management
	admin.Get("/users", "users.index", userController.Index)
	admin.Delete("/users/{id}", "users.destroy", userController.Destroy)
	admin.Patch("/admin/{id}", "users.promote", userController.Promote)

	// menu catalog
	api.Get("/menu", "menu.index", menuController.Index)
	api.Get("/menuItem/{id}", "menu.show", menuController.Show)
	api.Delete("/menuItem/{id}", "menu.destroy", menuController.Destroy)
	admin.Post("/menu", "menu.store", menuController.Store)
	admin.Patch("/menu/update-item/{id}", "menu.update", menuController.Update)
	admin.Post("/menu/image", "menu.upload-image", menuController.UploadImage)

	// reviews
	api.Get("/reviews", "reviews.index", reviewController.Index)
	api.Post("/reviews", "reviews.store", reviewController.Store)

	// carts
	api.Post("/cartItems", "carts.store", cartController.Store)
	api.Get("/cartItems", "carts.index", cartController.Index)
	api.Delete("/cartItems/{id}", "carts.destroy", cartController.Destroy)

	// payments and stats
	r.Post("/create-payment-intent", "payments.intent", orderController.CreateIntent)
	api.Post("/orders-payments", "payments.finalize", orderController.Finalize)
	protected.Get("/orders-payments/{email}", "payments.history", orderController.History)
	admin.Get("/admin-stats", "stats.admin", statsController.AdminStats)
}
