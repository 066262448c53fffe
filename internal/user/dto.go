package user

import (
	"errors"
	"strings"
)

// RegisterDTO represents the request payload for creating an account
type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// Validate validates the RegisterDTO
func (dto RegisterDTO) Validate() error {
	if strings.TrimSpace(dto.Name) == "" {
		return errors.New("name is required")
	}
	if dto.Email == "" {
		return errors.New("email is required")
	}
	if !strings.Contains(dto.Email, "@") {
		return errors.New("email is invalid")
	}
	if len(dto.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if dto.Role != "" && !ValidRole(dto.Role) {
		return errors.New("role must be either 'employee' or 'admin'")
	}
	return nil
}

// RegisterResponse is returned on successful registration. It intentionally
// omits the password hash.
type RegisterResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
