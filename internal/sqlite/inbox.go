package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/auralis-hq/auralis/pkg/types"
)

// Task title derivation during conversion.
const (
	maxTaskTitleLen   = 120
	fallbackTaskTitle = "Inbox item"
)

// Inbox is the repository for InboxItem entities, including the conversion
// workflow that spawns tasks.
type Inbox struct {
	store *Store
}

// NewInbox returns an Inbox repository backed by the given store.
func NewInbox(store *Store) *Inbox {
	return &Inbox{store: store}
}

// Add captures a new inbox item with state=unprocessed.
// Returns the new id, or ErrValidation if the trimmed content is empty or
// the source is unrecognized.
func (r *Inbox) Add(content string, source types.InboxSource) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: content cannot be empty", types.ErrValidation)
	}
	if !source.Valid() {
		return "", fmt.Errorf("%w: invalid source %q (must be 'text' or 'voice')", types.ErrValidation, source)
	}

	id := newID("inbox")
	err := r.store.With(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO inbox_items (id, content, source, state) VALUES (?, ?, ?, 'unprocessed')",
			id, content, string(source),
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("inserting inbox item: %w", err)
	}
	return id, nil
}

// List returns inbox items ordered by created_at descending. A zero state
// returns all items; otherwise only items in that state.
func (r *Inbox) List(state types.InboxState) ([]types.InboxItem, error) {
	query := "SELECT id, content, source, state, created_at FROM inbox_items"
	var args []any
	if state != "" {
		query += " WHERE state = ?"
		args = append(args, string(state))
	}
	query += " ORDER BY created_at DESC"

	var items []types.InboxItem
	err := r.store.With(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var it types.InboxItem
			if err := rows.Scan(&it.ID, &it.Content, &it.Source, &it.State, &it.CreatedAt); err != nil {
				return err
			}
			items = append(items, it)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing inbox items: %w", err)
	}
	if items == nil {
		items = []types.InboxItem{}
	}
	return items, nil
}

// SetState updates the item's processing state.
// Returns ErrValidation for an unrecognized state and ErrNotFound if no
// item has the given id.
func (r *Inbox) SetState(id string, state types.InboxState) error {
	if !state.Valid() {
		return fmt.Errorf("%w: invalid state %q", types.ErrValidation, state)
	}

	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec("UPDATE inbox_items SET state = ? WHERE id = ?", string(state), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("updating inbox item %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: inbox item %s", types.ErrNotFound, id)
	}
	return nil
}

// ConvertToTask turns an unprocessed inbox item into a task under the
// fallback area and marks the item processed. The whole sequence runs in
// one transaction: either the task exists and the item is processed, or
// neither. An item converts at most once; a second call returns
// ErrInvalidState.
// Returns the new task id.
func (r *Inbox) ConvertToTask(id string) (string, error) {
	var taskID string
	err := r.store.WithTx(func(tx *sql.Tx) error {
		var content, state string
		err := tx.QueryRow("SELECT content, state FROM inbox_items WHERE id = ?", id).Scan(&content, &state)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: inbox item %s", types.ErrNotFound, id)
		}
		if err != nil {
			return fmt.Errorf("fetching inbox item %s: %w", id, err)
		}

		if types.InboxState(state) != types.InboxUnprocessed {
			return fmt.Errorf("%w: inbox item %s is already %s", types.ErrInvalidState, id, state)
		}

		taskID = newID("task")
		_, err = tx.Exec(
			"INSERT INTO tasks (id, area_id, title) VALUES (?, ?, ?)",
			taskID, types.FallbackAreaID, taskTitleFromContent(content),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}

		_, err = tx.Exec(
			"UPDATE inbox_items SET state = ? WHERE id = ?",
			string(types.InboxProcessed), id,
		)
		if err != nil {
			return fmt.Errorf("marking inbox item processed: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	r.store.log.Debug("inbox item converted",
		zap.String("inbox_id", id),
		zap.String("task_id", taskID),
	)
	return taskID, nil
}

// taskTitleFromContent derives a task title from the first non-empty line
// of the item's content, clamped to 120 bytes. The clamp is a plain byte
// clamp, not word-aware; existing data depends on the exact cut.
func taskTitleFromContent(content string) string {
	var title string
	for _, line := range strings.Split(content, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			title = t
			break
		}
	}
	if title == "" {
		title = fallbackTaskTitle
	}
	if len(title) > maxTaskTitleLen {
		title = title[:maxTaskTitleLen]
	}
	return title
}
