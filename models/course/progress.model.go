package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks per-course (LessonID nil) or per-lesson progress.
// Progress never regresses and completion is sticky; a completed row always
// carries Progress == 100.
type CourseProgress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_lesson;uniqueIndex:idx_user_course_level,where:lesson_id IS NULL"`
	CourseID    uint       `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_lesson;uniqueIndex:idx_user_course_level,where:lesson_id IS NULL"`
	LessonID    *uint      `json:"lesson_id" gorm:"uniqueIndex:idx_user_course_lesson"`
	Progress    float64    `json:"progress" gorm:"default:0"`   // Completion percentage (0-100)
	TimeSpent   int64      `json:"time_spent" gorm:"default:0"` // Accumulated seconds
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`
	IsDeleted   bool       `gorm:"default:false"`
}

func (CourseProgress) TableName() string {
	return "course_progresses"
}
