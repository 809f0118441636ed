package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TaskStatus
		wantErr bool
	}{
		{name: "todo", input: "todo", want: TaskTodo},
		{name: "doing", input: "doing", want: TaskDoing},
		{name: "done", input: "done", want: TaskDone},
		{name: "deferred", input: "deferred", want: TaskDeferred},
		{name: "unknown rejected", input: "cancelled", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
		{name: "case sensitive", input: "Done", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTaskStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProjectStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ProjectStatus
		wantErr bool
	}{
		{name: "paused", input: "paused", want: ProjectPaused},
		{name: "active", input: "active", want: ProjectActive},
		{name: "completed", input: "completed", want: ProjectCompleted},
		{name: "unknown rejected", input: "archived", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProjectStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInboxSource(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    InboxSource
		wantErr bool
	}{
		{name: "text", input: "text", want: SourceText},
		{name: "voice", input: "voice", want: SourceVoice},
		{name: "unknown rejected", input: "email", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInboxSource(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInboxState(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    InboxState
		wantErr bool
	}{
		{name: "unprocessed", input: "unprocessed", want: InboxUnprocessed},
		{name: "processed", input: "processed", want: InboxProcessed},
		{name: "archived", input: "archived", want: InboxArchived},
		{name: "unknown rejected", input: "done", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInboxState(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
