package types

// FallbackAreaID is the pre-seeded area that owns tasks and projects
// created without an explicit area. It is inserted at store initialization
// and never deleted.
const FallbackAreaID = "area_admin_life"

// Area groups projects, tasks, and notes under one sphere of responsibility.
type Area struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
}
