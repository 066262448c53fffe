package postgres

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tusharpolymers/onboard-portal/internal"
	"github.com/tusharpolymers/onboard-portal/internal/task"
)

// TaskRepository implements the task.Repository interface using GORM
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) task.Repository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(t *task.Task) error {
	return r.db.Create(t).Error
}

func (r *TaskRepository) GetByID(id int64) (*task.Task, error) {
	var t task.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// GetByUserID returns the user's tasks in insertion order.
func (r *TaskRepository) GetByUserID(userID int64) ([]*task.Task, error) {
	var tasks []*task.Task
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

// UpdateCompletion updates only the completion flag of a task.
func (r *TaskRepository) UpdateCompletion(id int64, isCompleted bool) error {
	return r.db.Model(&task.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_completed": isCompleted,
			"updated_at":   time.Now(),
		}).Error
}
