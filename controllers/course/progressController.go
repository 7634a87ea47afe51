package controllers

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	courseModels "learnhub/models/course"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgress records lesson or course progress for the caller
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedProgress").(*struct {
		LessonID       *uint   `json:"lessonId"`
		Progress       float64 `json:"progress"`
		TimeSpentDelta int64   `json:"timeSpentDelta"`
		Completed      *bool   `json:"completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	progress, err := services.UpdateProgress(database.Database.Db, userID, uint(courseID), services.ProgressUpdate{
		LessonID:       reqData.LessonID,
		Progress:       reqData.Progress,
		TimeSpentDelta: reqData.TimeSpentDelta,
		Completed:      reqData.Completed,
	})
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", progress)
}

// GetUserProgress returns the caller's progress in a course: the course-level
// row plus the per-lesson rows
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment courseModels.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var courseProgress courseModels.CourseProgress
	hasCourseRow := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND lesson_id IS NULL AND is_deleted = ?", userID, courseID, false).
		First(&courseProgress).Error == nil

	var lessonProgress []courseModels.CourseProgress
	database.Database.Db.
		Where("user_id = ? AND course_id = ? AND lesson_id IS NOT NULL AND is_deleted = ?", userID, courseID, false).
		Find(&lessonProgress)

	response := fiber.Map{
		"enrollment":      enrollment,
		"lesson_progress": lessonProgress,
	}
	if hasCourseRow {
		response["course_progress"] = courseProgress
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", response)
}
