package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/auralis-hq/auralis/pkg/types"
)

// Tasks is the repository for Task entities.
type Tasks struct {
	store *Store
}

// NewTasks returns a Tasks repository backed by the given store.
func NewTasks(store *Store) *Tasks {
	return &Tasks{store: store}
}

// Add creates a new task with status=todo and priority=normal. An empty
// areaID falls back to the seeded default area; an empty projectID stores
// NULL. Neither id is checked against its table.
// Returns the new id, or ErrValidation if the trimmed title is empty.
func (r *Tasks) Add(title, areaID, projectID string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("%w: title cannot be empty", types.ErrValidation)
	}
	if areaID == "" {
		areaID = types.FallbackAreaID
	}

	id := newID("task")
	err := r.store.With(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO tasks (id, area_id, project_id, title) VALUES (?, ?, ?, ?)",
			id, areaID, nullIfEmpty(projectID), title,
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("inserting task: %w", err)
	}
	return id, nil
}

// List returns tasks ordered by created_at descending. A zero status
// returns all tasks; otherwise only tasks with that status.
func (r *Tasks) List(status types.TaskStatus) ([]types.Task, error) {
	query := `SELECT id, area_id, project_id, title, status, priority,
       due_at, scheduled_at, created_at, completed_at FROM tasks`
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"

	var tasks []types.Task
	err := r.store.With(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			task, err := scanTask(rows)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	if tasks == nil {
		tasks = []types.Task{}
	}
	return tasks, nil
}

// SetStatus updates the task's status. Marking a task done stamps
// completed_at with the current UTC time; any other status clears it. The
// coupling is unconditional: completed_at is non-null exactly when the
// status is done.
// Returns ErrValidation for an unrecognized status and ErrNotFound if no
// task has the given id.
func (r *Tasks) SetStatus(id string, status types.TaskStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid task status %q", types.ErrValidation, status)
	}

	query := "UPDATE tasks SET status = ?, completed_at = NULL WHERE id = ?"
	if status == types.TaskDone {
		query = "UPDATE tasks SET status = ?, completed_at = (strftime('%Y-%m-%dT%H:%M:%fZ','now')) WHERE id = ?"
	}

	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec(query, string(status), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("updating task %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: task %s", types.ErrNotFound, id)
	}
	return nil
}

// scanTask hydrates one tasks row.
func scanTask(rows *sql.Rows) (types.Task, error) {
	var t types.Task
	var projectID, dueAt, scheduledAt, completedAt sql.NullString
	err := rows.Scan(
		&t.ID, &t.AreaID, &projectID, &t.Title, &t.Status, &t.Priority,
		&dueAt, &scheduledAt, &t.CreatedAt, &completedAt,
	)
	if err != nil {
		return types.Task{}, err
	}
	t.ProjectID = strPtr(projectID)
	t.DueAt = strPtr(dueAt)
	t.ScheduledAt = strPtr(scheduledAt)
	t.CompletedAt = strPtr(completedAt)
	return t, nil
}
