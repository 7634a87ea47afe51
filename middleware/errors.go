package middleware

import (
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse maps a service error kind onto an HTTP response.
// Unknown errors become a 500 without leaking internals.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch services.ErrKind(err) {
	case services.KindNotFound:
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case services.KindConflict:
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	case services.KindInvalidInput:
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case services.KindPreconditionFailed:
		return JsonResponse(c, fiber.StatusPreconditionFailed, false, err.Error(), nil)
	case services.KindUnauthorized:
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
