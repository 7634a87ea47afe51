package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (public published courses)
	userGroup.Get("/list", controllers.GetAllCourses)
	userGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionEnroll), validators.CourseID(), validators.EnrollCourse(), controllers.EnrollInCourse)
	userGroup.Post("/:id/cancel-enrollment", middleware.JWTMiddleware, validators.CourseID(), controllers.CancelEnrollment)

	// Progress tracking
	userGroup.Post("/:id/progress", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionUpdateProgress), validators.CourseID(), validators.UpdateProgress(), controllers.UpdateProgress)
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), controllers.GetUserProgress)

	// Certificate issuance
	userGroup.Post("/:id/certificate", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionIssueCertificate), validators.CourseID(), controllers.IssueCertificate)

	// User listings
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)

	// Public certificate verification (the target of verification URLs)
	app.Get("/certificate/verify/:number", controllers.VerifyCertificate)
}
