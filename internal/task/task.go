package task

import (
	"time"
)

// Task is a single onboarding checklist item. A task is visible and mutable
// only by its owning user; completion is the only state that ever changes.
type Task struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	UserID      int64      `json:"user_id" gorm:"column:user_id;not null;index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"column:due_date"`
	IsCompleted bool       `json:"is_completed" gorm:"column:is_completed;default:false"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"column:updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}

// Progress is the derived completion summary for a task list.
type Progress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Ratio     float64 `json:"ratio"`
}

// ComputeProgress derives completed/total for a task list. An empty list
// yields a ratio of 0, never NaN.
func ComputeProgress(tasks []*Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Ratio = float64(p.Completed) / float64(p.Total)
	}
	return p
}
