package task

import (
	"errors"
	"strings"
	"time"
)

// CreateTaskDTO represents the request payload for assigning a task. The
// target user is supplied explicitly because tasks are assigned on behalf of
// employees, not self-created.
type CreateTaskDTO struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	UserID      int64      `json:"user_id"`
}

// Validate validates the CreateTaskDTO
func (dto CreateTaskDTO) Validate() error {
	if strings.TrimSpace(dto.Title) == "" {
		return errors.New("title is required")
	}
	if dto.UserID <= 0 {
		return errors.New("user_id is required")
	}
	return nil
}

// UpdateTaskDTO carries the desired completion flag for the toggle protocol.
// A nil IsCompleted is a defined no-op: the flag keeps its current value.
type UpdateTaskDTO struct {
	IsCompleted *bool `json:"is_completed"`
}
