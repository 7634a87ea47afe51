package course

import "gorm.io/gorm"

// Course status enum values
const (
	StatusDraft    = "DRAFT"
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Course represents a learning course. A nil Price means the course is free.
type Course struct {
	gorm.Model
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	InstructorID uint     `json:"instructor_id" gorm:"index"`
	Author       string   `json:"author"`
	Price        *float64 `json:"price"`                         // nil or 0 => free
	Duration     int64    `json:"duration" gorm:"default:0"`     // duration in hours
	Status       string   `json:"status" gorm:"default:'DRAFT'"` // DRAFT, ACTIVE, INACTIVE
	Category     string   `json:"category"`
	Level        string   `json:"level"` // BEGINNER, INTERMEDIATE, ADVANCED
	Rating       uint     `json:"rating" gorm:"default:0"`
	ThumbnailURL string   `json:"thumbnail_url"`
	IsPublished  bool     `json:"is_published" gorm:"default:false"`
	IsDeleted    bool     `gorm:"default:false"`
}

// IsFree reports whether the course requires no payment to enroll
func (c *Course) IsFree() bool {
	return c.Price == nil || *c.Price <= 0
}
