package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course management routes for admins and instructors
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionManageCourses))

	adminGroup.Post("/create", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Post("/:id/update", validators.CourseID(), validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Post("/:id/publish", validators.CourseID(), controllers.AdminPublishCourse)
	adminGroup.Post("/:id/lesson", validators.CourseID(), validators.AddLesson(), controllers.AdminAddLesson)
	adminGroup.Get("/:id/enrollments", validators.CourseID(), controllers.AdminGetCourseEnrollments)

	app.Get("/admin/course/:id/dashboard", middleware.JWTMiddleware, middleware.Authorize(middleware.ActionViewDashboard), validators.CourseID(), controllers.AdminCourseDashboard)
}
