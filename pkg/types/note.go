package types

// Note is a free-form text note, optionally attached to an area and/or a
// project. Notes are the only entity that can be deleted.
type Note struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	AreaID    *string `json:"area_id"`
	ProjectID *string `json:"project_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}
