package sqlite

// Schema DDL for all tables. Timestamps are generated by SQLite in UTC with
// millisecond precision; callers never supply them. area_id and project_id
// columns are soft references on purpose: no FOREIGN KEY clauses, so a
// dangling id inserts cleanly.
const (
	createAreas = `CREATE TABLE IF NOT EXISTS areas (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    active INTEGER NOT NULL DEFAULT 1,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);`

	createProjects = `CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    area_id TEXT NOT NULL,
    name TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'paused',
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id TEXT PRIMARY KEY,
    area_id TEXT NOT NULL,
    project_id TEXT,
    title TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'todo',
    priority TEXT NOT NULL DEFAULT 'normal',
    due_at TEXT,
    scheduled_at TEXT,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
    completed_at TEXT
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    content TEXT NOT NULL,
    area_id TEXT,
    project_id TEXT,
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
    updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);`

	createInboxItems = `CREATE TABLE IF NOT EXISTS inbox_items (
    id TEXT PRIMARY KEY,
    content TEXT NOT NULL,
    source TEXT NOT NULL,
    state TEXT NOT NULL DEFAULT 'unprocessed',
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);`
)

// Index DDL for the common list filters.
const (
	idxProjectsStatus = `CREATE INDEX IF NOT EXISTS idx_projects_status ON projects(status);`
	idxTasksStatus    = `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);`
	idxInboxState     = `CREATE INDEX IF NOT EXISTS idx_inbox_items_state ON inbox_items(state);`
	idxNotesArea      = `CREATE INDEX IF NOT EXISTS idx_notes_area ON notes(area_id);`
	idxNotesProject   = `CREATE INDEX IF NOT EXISTS idx_notes_project ON notes(project_id);`
)

// seedFallbackArea inserts the default area that owns tasks and projects
// created without an explicit area. INSERT OR IGNORE keeps re-runs no-ops.
const seedFallbackArea = `INSERT OR IGNORE INTO areas (id, name, active) VALUES ('area_admin_life', 'Admin & Life', 1);`

// schemaDDL lists all schema statements in application order.
var schemaDDL = []string{
	createAreas,
	createProjects,
	createTasks,
	createNotes,
	createInboxItems,
	idxProjectsStatus,
	idxTasksStatus,
	idxInboxState,
	idxNotesArea,
	idxNotesProject,
}
