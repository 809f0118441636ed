package types

import "fmt"

// InboxSource identifies how an inbox item was captured.
type InboxSource string

// Inbox capture sources.
const (
	SourceText  InboxSource = "text"
	SourceVoice InboxSource = "voice"
)

// validInboxSources is the set of recognized capture sources.
var validInboxSources = map[InboxSource]bool{
	SourceText:  true,
	SourceVoice: true,
}

// Valid reports whether the source is one of the recognized values.
func (s InboxSource) Valid() bool {
	return validInboxSources[s]
}

// ParseInboxSource converts a raw string token into an InboxSource.
// Returns ErrValidation for unrecognized tokens.
func ParseInboxSource(s string) (InboxSource, error) {
	src := InboxSource(s)
	if !src.Valid() {
		return "", fmt.Errorf("%w: invalid source %q (must be 'text' or 'voice')", ErrValidation, s)
	}
	return src, nil
}

// InboxState is the processing state of an inbox item. An item reaches
// processed only through conversion to a task.
type InboxState string

// Inbox processing states.
const (
	InboxUnprocessed InboxState = "unprocessed"
	InboxProcessed   InboxState = "processed"
	InboxArchived    InboxState = "archived"
)

// validInboxStates is the set of recognized processing states.
var validInboxStates = map[InboxState]bool{
	InboxUnprocessed: true,
	InboxProcessed:   true,
	InboxArchived:    true,
}

// Valid reports whether the state is one of the recognized values.
func (s InboxState) Valid() bool {
	return validInboxStates[s]
}

// ParseInboxState converts a raw string token into an InboxState.
// Returns ErrValidation for unrecognized tokens.
func ParseInboxState(s string) (InboxState, error) {
	st := InboxState(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: invalid state %q (must be 'unprocessed', 'processed', or 'archived')", ErrValidation, s)
	}
	return st, nil
}

// InboxItem is a raw captured thought awaiting triage. Conversion may spawn
// a task; nothing references an inbox item.
type InboxItem struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Source    InboxSource `json:"source"`
	State     InboxState  `json:"state"`
	CreatedAt string      `json:"created_at"`
}
