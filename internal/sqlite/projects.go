package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/auralis-hq/auralis/pkg/types"
)

// Projects is the repository for Project entities.
type Projects struct {
	store *Store
}

// NewProjects returns a Projects repository backed by the given store.
func NewProjects(store *Store) *Projects {
	return &Projects{store: store}
}

// Add creates a new project with status=paused. An empty areaID falls back
// to the seeded default area; the id is not checked against the areas table.
// Returns the new id, or ErrValidation if the trimmed name is empty.
func (r *Projects) Add(name, areaID string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", types.ErrValidation)
	}
	if areaID == "" {
		areaID = types.FallbackAreaID
	}

	id := newID("project")
	err := r.store.With(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO projects (id, area_id, name, status) VALUES (?, ?, ?, 'paused')",
			id, areaID, name,
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("inserting project: %w", err)
	}
	return id, nil
}

// List returns projects ordered by created_at descending. A zero status
// returns all projects; otherwise only projects with that status.
func (r *Projects) List(status types.ProjectStatus) ([]types.Project, error) {
	query := "SELECT id, area_id, name, status, created_at FROM projects"
	var args []any
	if status != "" {
		query += " WHERE status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC"

	var projects []types.Project
	err := r.store.With(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p types.Project
			if err := rows.Scan(&p.ID, &p.AreaID, &p.Name, &p.Status, &p.CreatedAt); err != nil {
				return err
			}
			projects = append(projects, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []types.Project{}
	}
	return projects, nil
}

// SetStatus updates the project's status.
// Returns ErrValidation for an unrecognized status and ErrNotFound if no
// project has the given id.
func (r *Projects) SetStatus(id string, status types.ProjectStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid project status %q", types.ErrValidation, status)
	}

	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec("UPDATE projects SET status = ? WHERE id = ?", string(status), id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("updating project %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: project %s", types.ErrNotFound, id)
	}
	return nil
}
