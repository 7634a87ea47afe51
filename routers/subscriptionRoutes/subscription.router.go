package subscriptionRoutes

import (
	controllers "learnhub/controllers/subscription"
	"learnhub/middleware"
	validators "learnhub/validators/subscription"

	"github.com/gofiber/fiber/v2"
)

// SetupSubscriptionRoutes sets up subscription activation and listing routes
func SetupSubscriptionRoutes(app *fiber.App) {
	subGroup := app.Group("/subscription", middleware.JWTMiddleware)

	subGroup.Post("/activate", validators.ActivateSubscription(), controllers.ActivateSubscription)
	subGroup.Post("/cancel", middleware.Authorize(middleware.ActionCancelSubscription), validators.CancelSubscription(), controllers.CancelSubscription)
	subGroup.Get("/my", controllers.GetMySubscriptions)

	adminGroup := app.Group("/admin/subscription", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionListSubscriptions))
	adminGroup.Get("/active", controllers.AdminGetActiveSubscriptions)
	adminGroup.Get("/expiring", controllers.AdminGetExpiringSubscriptions)
}
