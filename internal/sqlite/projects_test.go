package sqlite

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralis-hq/auralis/pkg/types"
)

func TestProjects_Add(t *testing.T) {
	s := openTestStore(t)
	projects := NewProjects(s)

	id, err := projects.Add("  Move apartment  ", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "project_"))

	list, err := projects.List("")
	require.NoError(t, err)
	require.Len(t, list, 1)

	p := list[0]
	assert.Equal(t, "Move apartment", p.Name)
	assert.Equal(t, types.FallbackAreaID, p.AreaID, "empty area falls back to default")
	assert.Equal(t, types.ProjectPaused, p.Status, "new projects start paused")
}

func TestProjects_AddSoftAreaReference(t *testing.T) {
	s := openTestStore(t)
	projects := NewProjects(s)

	// A dangling area id is accepted; referential integrity is not
	// enforced on area_id.
	_, err := projects.Add("Ghost project", "area_does_not_exist")
	assert.NoError(t, err)
}

func TestProjects_AddEmptyName(t *testing.T) {
	s := openTestStore(t)
	projects := NewProjects(s)

	_, err := projects.Add("   ", "")
	assert.ErrorIs(t, err, types.ErrValidation)

	list, err := projects.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProjects_ListFilterAndOrder(t *testing.T) {
	s := openTestStore(t)
	projects := NewProjects(s)

	first, err := projects.Add("First", "")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := projects.Add("Second", "")
	require.NoError(t, err)

	require.NoError(t, projects.SetStatus(second, types.ProjectActive))

	all, err := projects.List("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].ID, "newest first")
	assert.Equal(t, first, all[1].ID)

	active, err := projects.List(types.ProjectActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second, active[0].ID)
}

func TestProjects_SetStatus(t *testing.T) {
	s := openTestStore(t)
	projects := NewProjects(s)

	id, err := projects.Add("P", "")
	require.NoError(t, err)

	require.NoError(t, projects.SetStatus(id, types.ProjectCompleted))

	list, err := projects.List(types.ProjectCompleted)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)

	err = projects.SetStatus(id, types.ProjectStatus("archived"))
	assert.ErrorIs(t, err, types.ErrValidation)

	err = projects.SetStatus("project_missing", types.ProjectActive)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
