package announcement

import (
	"time"
)

// Announcement is a company-wide notice shown on the dashboard.
type Announcement struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Content     string    `json:"content" gorm:"not null"`
	PublishedAt time.Time `json:"published_at" gorm:"column:published_at"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Announcement) TableName() string {
	return "announcements"
}

// Repository defines the data access methods for announcements
type Repository interface {
	GetLatest(limit int) ([]*Announcement, error)
}
