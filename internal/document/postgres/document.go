package postgres

import (
	"gorm.io/gorm"

	"github.com/tusharpolymers/onboard-portal/internal/document"
)

// DocumentRepository implements the document.Repository interface using GORM
type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) document.Repository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(d *document.Document) error {
	return r.db.Create(d).Error
}

// GetByUserID returns the user's documents in insertion order.
func (r *DocumentRepository) GetByUserID(userID int64) ([]*document.Document, error) {
	var docs []*document.Document
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&docs).Error
	return docs, err
}
