package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auralis-hq/auralis/pkg/types"
)

func TestInbox_Add(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	id, err := inbox.Add("  Buy milk  ", types.SourceText)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "inbox_"))

	list, err := inbox.List("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Buy milk", list[0].Content)
	assert.Equal(t, types.SourceText, list[0].Source)
	assert.Equal(t, types.InboxUnprocessed, list[0].State)
}

func TestInbox_AddValidation(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	_, err := inbox.Add("   ", types.SourceText)
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = inbox.Add("content", types.InboxSource("email"))
	assert.ErrorIs(t, err, types.ErrValidation)

	list, err := inbox.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestInbox_SetState(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	id, err := inbox.Add("stale thought", types.SourceVoice)
	require.NoError(t, err)

	require.NoError(t, inbox.SetState(id, types.InboxArchived))

	archived, err := inbox.List(types.InboxArchived)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, id, archived[0].ID)

	err = inbox.SetState(id, types.InboxState("triaged"))
	assert.ErrorIs(t, err, types.ErrValidation)

	err = inbox.SetState("inbox_missing", types.InboxArchived)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestInbox_ConvertToTask(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)
	tasks := NewTasks(s)

	id, err := inbox.Add("Buy milk\nAlso check mail", types.SourceText)
	require.NoError(t, err)

	taskID, err := inbox.ConvertToTask(id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(taskID, "task_"))

	list, err := tasks.List("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	task := list[0]
	assert.Equal(t, taskID, task.ID)
	assert.Equal(t, "Buy milk", task.Title, "title is the first non-empty line")
	assert.Equal(t, types.FallbackAreaID, task.AreaID)
	assert.Nil(t, task.ProjectID)
	assert.Equal(t, types.TaskTodo, task.Status)

	processed, err := inbox.List(types.InboxProcessed)
	require.NoError(t, err)
	require.Len(t, processed, 1)
	assert.Equal(t, id, processed[0].ID)
}

func TestInbox_ConvertToTaskIdempotencyGuard(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	id, err := inbox.Add("one shot", types.SourceText)
	require.NoError(t, err)

	_, err = inbox.ConvertToTask(id)
	require.NoError(t, err)

	_, err = inbox.ConvertToTask(id)
	assert.ErrorIs(t, err, types.ErrInvalidState)

	// Exactly one task was created.
	list, err := NewTasks(s).List("")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestInbox_ConvertToTaskStateGuards(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	_, err := inbox.ConvertToTask("inbox_missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	id, err := inbox.Add("archived thought", types.SourceText)
	require.NoError(t, err)
	require.NoError(t, inbox.SetState(id, types.InboxArchived))

	_, err = inbox.ConvertToTask(id)
	assert.ErrorIs(t, err, types.ErrInvalidState)
}

func TestInbox_ConvertToTaskTitleTruncation(t *testing.T) {
	s := openTestStore(t)
	inbox := NewInbox(s)

	long := strings.Repeat("a", 200)
	id, err := inbox.Add(long+"\nsecond line", types.SourceText)
	require.NoError(t, err)

	taskID, err := inbox.ConvertToTask(id)
	require.NoError(t, err)

	list, err := NewTasks(s).List("")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, taskID, list[0].ID)
	assert.Equal(t, long[:120], list[0].Title, "title is clamped to 120 bytes")
}

func TestTaskTitleFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "first line", content: "Buy milk\nAlso check mail", want: "Buy milk"},
		{name: "skips blank leading lines", content: "\n  \nReal title\nrest", want: "Real title"},
		{name: "trims the line", content: "  padded  \n", want: "padded"},
		{name: "all blank falls back", content: " \n \t\n", want: "Inbox item"},
		{name: "clamped to 120 bytes", content: strings.Repeat("x", 150), want: strings.Repeat("x", 120)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taskTitleFromContent(tt.content))
		})
	}
}
