package paymentRoutes

import (
	controllers "learnhub/controllers/payment"
	"learnhub/middleware"
	validators "learnhub/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up payment recording and verification routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment", middleware.JWTMiddleware)

	paymentGroup.Post("/create", validators.CreatePayment(), controllers.CreatePayment)
	paymentGroup.Post("/verify", validators.VerifyPayment(), controllers.VerifyPayment)
	paymentGroup.Post("/fail", validators.FailPayment(), controllers.FailPayment)
	paymentGroup.Get("/history", controllers.GetPaymentHistory)
}
