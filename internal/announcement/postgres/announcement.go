package postgres

import (
	"gorm.io/gorm"

	"github.com/tusharpolymers/onboard-portal/internal/announcement"
)

type AnnouncementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) GetLatest(limit int) ([]*announcement.Announcement, error) {
	var items []*announcement.Announcement
	err := r.db.
		Order("published_at DESC").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AnnouncementRepository) Create(a *announcement.Announcement) error {
	return r.db.Create(a).Error
}
