package course

import "gorm.io/gorm"

// Lesson represents a single unit of course content
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ContentType string `json:"content_type" gorm:"default:'VIDEO'"` // VIDEO, ARTICLE, QUIZ
	ContentURL  string `json:"content_url"`
	Duration    int64  `json:"duration" gorm:"default:0"` // duration in minutes
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsPreview   bool   `json:"is_preview" gorm:"default:false"` // Viewable without enrollment
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
