package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralis-hq/auralis/pkg/types"
)

func TestAreas_Add(t *testing.T) {
	s := openTestStore(t)
	areas := NewAreas(s)

	id, err := areas.Add("  Health  ")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "area_"), "id %q missing prefix", id)

	list, err := areas.List(false)
	require.NoError(t, err)

	var found *types.Area
	for i := range list {
		if list[i].ID == id {
			found = &list[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "Health", found.Name, "name should be trimmed")
	assert.True(t, found.Active, "new areas start active")
	assert.NotEmpty(t, found.CreatedAt)
}

func TestAreas_AddEmptyName(t *testing.T) {
	s := openTestStore(t)
	areas := NewAreas(s)

	before, err := areas.List(false)
	require.NoError(t, err)

	for _, name := range []string{"", "   ", "\n\t"} {
		_, err := areas.Add(name)
		assert.ErrorIs(t, err, types.ErrValidation)
	}

	after, err := areas.List(false)
	require.NoError(t, err)
	assert.Len(t, after, len(before), "rejected adds must not write")
}

func TestAreas_ListOrderAndFilter(t *testing.T) {
	s := openTestStore(t)
	areas := NewAreas(s)

	zID, err := areas.Add("Zeta")
	require.NoError(t, err)
	aID, err := areas.Add("Alpha")
	require.NoError(t, err)

	require.NoError(t, areas.SetActive(zID, false))

	all, err := areas.List(false)
	require.NoError(t, err)
	// Seeded fallback area plus the two created ones, name ascending.
	require.Len(t, all, 3)
	assert.Equal(t, "Alpha", all[0].Name)
	assert.Equal(t, "Zeta", all[2].Name)

	active, err := areas.List(true)
	require.NoError(t, err)
	for _, a := range active {
		assert.True(t, a.Active)
		assert.NotEqual(t, zID, a.ID)
	}
	assert.Len(t, active, 2)
	_ = aID
}

func TestAreas_SetActiveNotFound(t *testing.T) {
	s := openTestStore(t)

	err := NewAreas(s).SetActive("area_missing", false)
	assert.ErrorIs(t, err, types.ErrNotFound)
}
