package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/auralis-hq/auralis/pkg/types"
)

// Areas is the repository for Area entities.
type Areas struct {
	store *Store
}

// NewAreas returns an Areas repository backed by the given store.
func NewAreas(store *Store) *Areas {
	return &Areas{store: store}
}

// Add creates a new area with the given name and active=true.
// Returns the new id, or ErrValidation if the trimmed name is empty.
func (r *Areas) Add(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name cannot be empty", types.ErrValidation)
	}

	id := newID("area")
	err := r.store.With(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO areas (id, name, active) VALUES (?, ?, 1)",
			id, name,
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("inserting area: %w", err)
	}
	return id, nil
}

// List returns all areas ordered by name ascending. With onlyActive, only
// areas with active=true are returned.
func (r *Areas) List(onlyActive bool) ([]types.Area, error) {
	query := "SELECT id, name, active, created_at FROM areas"
	if onlyActive {
		query += " WHERE active = 1"
	}
	query += " ORDER BY name ASC"

	var areas []types.Area
	err := r.store.With(func(db *sql.DB) error {
		rows, err := db.Query(query)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var a types.Area
			var active int64
			if err := rows.Scan(&a.ID, &a.Name, &active, &a.CreatedAt); err != nil {
				return err
			}
			a.Active = active != 0
			areas = append(areas, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing areas: %w", err)
	}
	if areas == nil {
		areas = []types.Area{}
	}
	return areas, nil
}

// SetActive updates the area's active flag.
// Returns ErrNotFound if no area has the given id.
func (r *Areas) SetActive(id string, active bool) error {
	flag := 0
	if active {
		flag = 1
	}

	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec("UPDATE areas SET active = ? WHERE id = ?", flag, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("updating area %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: area %s", types.ErrNotFound, id)
	}
	return nil
}
