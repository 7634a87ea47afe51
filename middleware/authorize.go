package middleware

import (
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// Actions guarded by the authorizer. Handlers never compare role strings
// directly; they ask whether the caller's role grants an action.
const (
	ActionManageCourses      = "manage-courses"
	ActionViewDashboard      = "view-dashboard"
	ActionListSubscriptions  = "list-subscriptions"
	ActionIssueCertificate   = "issue-certificate"
	ActionCancelSubscription = "cancel-subscription"
	ActionUpdateProgress     = "update-progress"
	ActionEnroll             = "enroll"
)

var roleActions = map[string][]string{
	models.RoleStudent: {
		ActionEnroll,
		ActionUpdateProgress,
		ActionIssueCertificate,
		ActionCancelSubscription,
	},
	models.RoleInstructor: {
		ActionEnroll,
		ActionUpdateProgress,
		ActionIssueCertificate,
		ActionCancelSubscription,
		ActionManageCourses,
		ActionViewDashboard,
	},
	models.RoleAdmin: {
		ActionEnroll,
		ActionUpdateProgress,
		ActionIssueCertificate,
		ActionCancelSubscription,
		ActionManageCourses,
		ActionViewDashboard,
		ActionListSubscriptions,
	},
}

// Can reports whether the role grants the action
func Can(role, action string) bool {
	for _, a := range roleActions[role] {
		if a == action {
			return true
		}
	}
	return false
}

// Authorize returns a middleware that rejects callers whose role does not
// grant the required action. Runs after JWTMiddleware, which stores the role.
func Authorize(action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: role not found",
				"data":    nil,
			})
		}

		if !Can(role, action) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
