package services

import (
	"errors"
	"time"

	courseModels "learnhub/models/course"

	"gorm.io/gorm"
)

// ProgressUpdate carries the fields of a progress write. Progress is a
// percentage in [0,100]; TimeSpentDelta accumulates; Completed, once true,
// is sticky.
type ProgressUpdate struct {
	LessonID       *uint
	Progress       float64
	TimeSpentDelta int64
	Completed      *bool
}

// UpdateProgress upserts the progress row for (user, course[, lesson]).
// Recorded progress only moves forward: repeated calls take the maximum of old
// and new, time spent accumulates, and a completed row stays completed with
// progress forced to 100.
func UpdateProgress(db *gorm.DB, userID, courseID uint, update ProgressUpdate) (*courseModels.CourseProgress, error) {
	if update.Progress < 0 || update.Progress > 100 {
		return nil, newError(KindInvalidInput, "Progress must be between 0 and 100!")
	}
	if update.TimeSpentDelta < 0 {
		return nil, newError(KindInvalidInput, "Time spent cannot be negative!")
	}

	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return nil, newError(KindNotFound, "Course not found!")
	}

	var enrollment courseModels.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND status = ? AND is_deleted = ?",
		userID, courseID, courseModels.EnrollmentActive, false).First(&enrollment).Error; err != nil {
		return nil, newError(KindPreconditionFailed, "User not enrolled in this course!")
	}

	if update.LessonID != nil {
		var lesson courseModels.Lesson
		if err := db.Where("id = ? AND course_id = ? AND is_deleted = ?", *update.LessonID, courseID, false).First(&lesson).Error; err != nil {
			return nil, newError(KindNotFound, "Lesson not found in this course!")
		}
	}

	query := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false)
	if update.LessonID != nil {
		query = query.Where("lesson_id = ?", *update.LessonID)
	} else {
		query = query.Where("lesson_id IS NULL")
	}

	var progress courseModels.CourseProgress
	err := query.First(&progress).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = courseModels.CourseProgress{
			UserID:   userID,
			CourseID: courseID,
			LessonID: update.LessonID,
		}
	}

	// Monotone progress
	if update.Progress > progress.Progress {
		progress.Progress = update.Progress
	}
	progress.TimeSpent += update.TimeSpentDelta

	// Sticky completion; completed rows always read 100
	if update.Completed != nil && *update.Completed && !progress.Completed {
		progress.Completed = true
		progress.Progress = 100
		now := time.Now()
		progress.CompletedAt = &now
	}
	if progress.Completed {
		progress.Progress = 100
	}

	if progress.ID == 0 {
		if createErr := db.Create(&progress).Error; createErr != nil {
			if errors.Is(createErr, gorm.ErrDuplicatedKey) {
				return nil, newError(KindConflict, "Progress update already in flight!")
			}
			return nil, createErr
		}
	} else {
		if saveErr := db.Save(&progress).Error; saveErr != nil {
			return nil, saveErr
		}
	}

	return &progress, nil
}

// CourseCompleted reports whether the user has a completed course-level
// progress row for the course
func CourseCompleted(db *gorm.DB, userID, courseID uint) (bool, error) {
	var progress courseModels.CourseProgress
	err := db.Where("user_id = ? AND course_id = ? AND lesson_id IS NULL AND is_deleted = ?", userID, courseID, false).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return progress.Completed, nil
}
