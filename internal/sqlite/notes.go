package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/auralis-hq/auralis/pkg/types"
)

// Notes is the repository for Note entities.
type Notes struct {
	store *Store
}

// NewNotes returns a Notes repository backed by the given store.
func NewNotes(store *Store) *Notes {
	return &Notes{store: store}
}

// Add creates a new note. areaID and projectID are optional soft
// references; empty strings store NULL.
// Returns the new id, or ErrValidation if the trimmed title or content is
// empty.
func (r *Notes) Add(title, content, areaID, projectID string) (string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return "", fmt.Errorf("%w: title cannot be empty", types.ErrValidation)
	}
	if content == "" {
		return "", fmt.Errorf("%w: content cannot be empty", types.ErrValidation)
	}

	id := newID("note")
	err := r.store.With(func(db *sql.DB) error {
		_, err := db.Exec(
			"INSERT INTO notes (id, title, content, area_id, project_id) VALUES (?, ?, ?, ?, ?)",
			id, title, content, nullIfEmpty(areaID), nullIfEmpty(projectID),
		)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("inserting note: %w", err)
	}
	return id, nil
}

// List returns notes ordered by updated_at descending. A non-empty
// projectID filters by project and takes precedence over areaID; a
// non-empty areaID alone filters by area; with neither, all notes are
// returned.
func (r *Notes) List(areaID, projectID string) ([]types.Note, error) {
	query := "SELECT id, title, content, area_id, project_id, created_at, updated_at FROM notes"
	var args []any
	switch {
	case projectID != "":
		query += " WHERE project_id = ?"
		args = append(args, projectID)
	case areaID != "":
		query += " WHERE area_id = ?"
		args = append(args, areaID)
	}
	query += " ORDER BY updated_at DESC"

	var notes []types.Note
	err := r.store.With(func(db *sql.DB) error {
		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			note, err := scanNote(rows.Scan)
			if err != nil {
				return err
			}
			notes = append(notes, note)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	if notes == nil {
		notes = []types.Note{}
	}
	return notes, nil
}

// Get returns the note with the given id, or ErrNotFound.
func (r *Notes) Get(id string) (*types.Note, error) {
	var note types.Note
	err := r.store.With(func(db *sql.DB) error {
		row := db.QueryRow(
			"SELECT id, title, content, area_id, project_id, created_at, updated_at FROM notes WHERE id = ?",
			id,
		)
		n, err := scanNote(row.Scan)
		if err != nil {
			return err
		}
		note = n
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: note %s", types.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("getting note %s: %w", id, err)
	}
	return &note, nil
}

// Update replaces all mutable fields of the note and refreshes updated_at.
// Returns ErrValidation if the trimmed title or content is empty, and
// ErrNotFound if no note has the given id.
func (r *Notes) Update(id, title, content, areaID, projectID string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", types.ErrValidation)
	}
	if content == "" {
		return fmt.Errorf("%w: content cannot be empty", types.ErrValidation)
	}

	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec(
			`UPDATE notes SET title = ?, content = ?, area_id = ?, project_id = ?,
       updated_at = (strftime('%Y-%m-%dT%H:%M:%fZ','now')) WHERE id = ?`,
			title, content, nullIfEmpty(areaID), nullIfEmpty(projectID), id,
		)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("updating note %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: note %s", types.ErrNotFound, id)
	}
	return nil
}

// Delete removes the note outright. Notes are the only deletable entity.
// Returns ErrNotFound if no note has the given id.
func (r *Notes) Delete(id string) error {
	var affected int64
	err := r.store.With(func(db *sql.DB) error {
		res, err := db.Exec("DELETE FROM notes WHERE id = ?", id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("deleting note %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: note %s", types.ErrNotFound, id)
	}
	return nil
}

// scanNote hydrates one notes row from a Scan function, shared between
// QueryRow and Rows iteration.
func scanNote(scan func(dest ...any) error) (types.Note, error) {
	var n types.Note
	var areaID, projectID sql.NullString
	err := scan(&n.ID, &n.Title, &n.Content, &areaID, &projectID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return types.Note{}, err
	}
	n.AreaID = strPtr(areaID)
	n.ProjectID = strPtr(projectID)
	return n, nil
}
