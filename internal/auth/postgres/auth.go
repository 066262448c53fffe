package postgres

import (
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"github.com/tusharpolymers/onboard-portal/internal"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetCredentialsByEmail(email string) (string, int64, bool, error) {
	var (
		passwordHash string
		userID       int64
		active       bool
	)
	query := `SELECT id, password_hash, is_active FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&userID, &passwordHash, &active); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", 0, false, internal.ErrUserNotFound
		}
		return "", 0, false, err
	}
	return passwordHash, userID, active, nil
}

func (r *Repository) GetUserByID(userID int64) (*internal.User, error) {
	var user internal.User

	query := `SELECT id, name, email, role FROM users WHERE id = ? AND is_active = true`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
