package types

import "fmt"

// TaskStatus is the lifecycle state of a task. Any status is reachable from
// any other; "done" is distinguished only by the completed_at side effect.
type TaskStatus string

// Task statuses. New tasks start as todo.
const (
	TaskTodo     TaskStatus = "todo"
	TaskDoing    TaskStatus = "doing"
	TaskDone     TaskStatus = "done"
	TaskDeferred TaskStatus = "deferred"
)

// validTaskStatuses is the set of recognized task status values.
var validTaskStatuses = map[TaskStatus]bool{
	TaskTodo:     true,
	TaskDoing:    true,
	TaskDone:     true,
	TaskDeferred: true,
}

// Valid reports whether the status is one of the recognized values.
func (s TaskStatus) Valid() bool {
	return validTaskStatuses[s]
}

// ParseTaskStatus converts a raw string token into a TaskStatus.
// Returns ErrValidation for unrecognized tokens.
func ParseTaskStatus(s string) (TaskStatus, error) {
	ts := TaskStatus(s)
	if !ts.Valid() {
		return "", fmt.Errorf("%w: invalid task status %q (must be 'todo', 'doing', 'done', or 'deferred')", ErrValidation, s)
	}
	return ts, nil
}

// TaskPriority orders tasks by urgency. New tasks default to normal.
type TaskPriority string

// Task priorities.
const (
	PriorityLow    TaskPriority = "low"
	PriorityNormal TaskPriority = "normal"
	PriorityHigh   TaskPriority = "high"
)

// Task is a single actionable item belonging to one area and optionally
// one project.
type Task struct {
	ID          string       `json:"id"`
	AreaID      string       `json:"area_id"`
	ProjectID   *string      `json:"project_id"`
	Title       string       `json:"title"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueAt       *string      `json:"due_at"`
	ScheduledAt *string      `json:"scheduled_at"`
	CreatedAt   string       `json:"created_at"`
	CompletedAt *string      `json:"completed_at"`
}
