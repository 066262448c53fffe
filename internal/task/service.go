package task

import (
	"log/slog"

	"github.com/tusharpolymers/onboard-portal/internal"
)

// Repository defines the data access methods for tasks
type Repository interface {
	Create(t *Task) error
	GetByID(id int64) (*Task, error)
	GetByUserID(userID int64) ([]*Task, error)
	UpdateCompletion(id int64, isCompleted bool) error
}

// Service handles task business logic
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTask assigns a task to the user named in the payload. Creator
// privilege is deliberately not checked; tasks are assigned on behalf of
// employees by whoever drives the onboarding flow.
func (s *Service) CreateTask(dto CreateTaskDTO) (*Task, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("task validation failed", "error", err)
		return nil, internal.NewValidationError(err.Error(), internal.ErrCodeValidationFailed)
	}

	t := &Task{
		UserID:      dto.UserID,
		Title:       dto.Title,
		Description: dto.Description,
		DueDate:     dto.DueDate,
		IsCompleted: false,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create task", "error", err, "user_id", dto.UserID)
		return nil, err
	}

	s.logger.Info("task created", "task_id", t.ID, "user_id", t.UserID, "title", t.Title)
	return t, nil
}

// GetTasksForUser returns every task owned by the caller.
func (s *Service) GetTasksForUser(userID int64) ([]*Task, error) {
	tasks, err := s.repo.GetByUserID(userID)
	if err != nil {
		s.logger.Error("failed to get tasks", "error", err, "user_id", userID)
		return nil, err
	}
	return tasks, nil
}

// UpdateTask sets the completion flag on an owned task. A nil flag in the
// DTO leaves the current value in place. No locking: concurrent updates are
// last-write-wins.
func (s *Service) UpdateTask(taskID, callerID int64, dto UpdateTaskDTO) (*Task, error) {
	t, err := s.repo.GetByID(taskID)
	if err != nil {
		return nil, err
	}

	if t.UserID != callerID {
		s.logger.Warn("task update denied: owner mismatch",
			"task_id", taskID, "caller_id", callerID, "owner_id", t.UserID)
		return nil, internal.ErrTaskOwnership
	}

	if dto.IsCompleted == nil {
		return t, nil
	}

	if err := s.repo.UpdateCompletion(taskID, *dto.IsCompleted); err != nil {
		s.logger.Error("failed to update task", "error", err, "task_id", taskID)
		return nil, err
	}
	t.IsCompleted = *dto.IsCompleted

	s.logger.Info("task updated", "task_id", taskID, "is_completed", t.IsCompleted)
	return t, nil
}
