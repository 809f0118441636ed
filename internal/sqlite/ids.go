package sqlite

import "github.com/google/uuid"

// newID returns a prefixed entity id, e.g. "task_0192f3a1-...". UUID v7
// keeps ids roughly insertion-ordered; v4 is the fallback if v7 generation
// fails.
func newID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		return prefix + "_" + uuid.New().String()
	}
	return prefix + "_" + id.String()
}
