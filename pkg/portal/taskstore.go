package portal

import (
	"context"
	"fmt"
	"sync"
)

// TaskUpdater is the slice of the API the store needs for toggles.
type TaskUpdater interface {
	UpdateTask(ctx context.Context, taskID int64, isCompleted bool) (*Task, error)
}

// toggleCommand captures both sides of an optimistic flip so a revert never
// has to guess at the prior state.
type toggleCommand struct {
	taskID   int64
	previous bool
	desired  bool
}

// TaskStore is the client-side task collection. Tasks keep server order and
// are refreshed wholesale; Toggle applies the flip locally before the server
// confirms it and reverts to the captured previous value on any failure.
type TaskStore struct {
	mu      sync.Mutex
	updater TaskUpdater
	tasks   []Task
}

func NewTaskStore(updater TaskUpdater) *TaskStore {
	return &TaskStore{updater: updater}
}

// Replace swaps in a fresh task list from the server, preserving its order.
func (s *TaskStore) Replace(tasks []Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]Task, len(tasks))
	copy(s.tasks, tasks)
}

// Tasks returns a copy of the current list in server order.
func (s *TaskStore) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id, if present.
func (s *TaskStore) Get(taskID int64) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return Task{}, false
}

// Toggle flips a task's completion flag optimistically. The flip is applied
// locally first so the UI reflects it immediately; the desired value is then
// sent to the server. On any failure the flag reverts to the captured
// previous value. On success the optimistic value stands as-is: the server
// response is acknowledged but not re-applied, since the desired value is
// exactly what was persisted.
func (s *TaskStore) Toggle(ctx context.Context, taskID int64) error {
	cmd, err := s.apply(taskID)
	if err != nil {
		return err
	}

	if _, err := s.updater.UpdateTask(ctx, cmd.taskID, cmd.desired); err != nil {
		s.revert(cmd)
		return err
	}
	return nil
}

// apply captures the previous state and flips the flag in one critical
// section, so concurrent toggles of different tasks never interleave badly.
func (s *TaskStore) apply(taskID int64) (toggleCommand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			cmd := toggleCommand{
				taskID:   taskID,
				previous: s.tasks[i].IsCompleted,
				desired:  !s.tasks[i].IsCompleted,
			}
			s.tasks[i].IsCompleted = cmd.desired
			return cmd, nil
		}
	}
	return toggleCommand{}, fmt.Errorf("portal: task %d not in store", taskID)
}

// revert restores the captured previous value. The task may have been
// dropped by a concurrent Replace; that is fine, there is nothing to revert.
func (s *TaskStore) revert(cmd toggleCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == cmd.taskID {
			s.tasks[i].IsCompleted = cmd.previous
			return
		}
	}
}

// Progress reports completed/total for the current list. An empty store has
// progress 0, never NaN.
func (s *TaskStore) Progress() (completed, total int, ratio float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total = len(s.tasks)
	for _, t := range s.tasks {
		if t.IsCompleted {
			completed++
		}
	}
	if total > 0 {
		ratio = float64(completed) / float64(total)
	}
	return completed, total, ratio
}
