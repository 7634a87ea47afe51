package authRoutes

import (
	controllers "learnhub/controllers/auth"
	"learnhub/middleware"
	validators "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up authentication and profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
	authGroup.Post("/send-otp", controllers.SendOTP)
	authGroup.Post("/verify-otp", controllers.VerifyOTP)

	userGroup := app.Group("/user")
	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)
	userGroup.Get("/login-history", middleware.JWTMiddleware, controllers.LoginHistoryList)
}
