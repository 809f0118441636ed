package types

import "fmt"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

// Project statuses. New projects start paused.
const (
	ProjectPaused    ProjectStatus = "paused"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

// validProjectStatuses is the set of recognized project status values.
var validProjectStatuses = map[ProjectStatus]bool{
	ProjectPaused:    true,
	ProjectActive:    true,
	ProjectCompleted: true,
}

// Valid reports whether the status is one of the recognized values.
func (s ProjectStatus) Valid() bool {
	return validProjectStatuses[s]
}

// ParseProjectStatus converts a raw string token into a ProjectStatus.
// Returns ErrValidation for unrecognized tokens.
func ParseProjectStatus(s string) (ProjectStatus, error) {
	ps := ProjectStatus(s)
	if !ps.Valid() {
		return "", fmt.Errorf("%w: invalid project status %q (must be 'paused', 'active', or 'completed')", ErrValidation, s)
	}
	return ps, nil
}

// Project is a finite body of work belonging to one area.
type Project struct {
	ID        string        `json:"id"`
	AreaID    string        `json:"area_id"`
	Name      string        `json:"name"`
	Status    ProjectStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}
