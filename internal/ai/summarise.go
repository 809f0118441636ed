package ai

import (
	"context"
	"fmt"

	"github.com/auralis-hq/auralis/pkg/types"
)

// systemPrompt instructs the model to produce a grouped, de-duplicated
// bullet summary plus up to five actionable next steps.
const systemPrompt = `You are Auralis, a personal command-center assistant.

Your job is to transform raw notes into clear, non-redundant thinking.

Rules:
- Do NOT use meta language (e.g. "this note", "the author", "the writer").
- Do NOT repeat points or restate the same idea in different words.
- Group related ideas together.
- Ignore filler, repetition, and emotional venting unless it affects decisions.
- Prefer concrete details (deadlines, commitments, constraints).
- Limit Possible actions to the most important 5.
- If any actions are time-sensitive, prefix them with "[Soon]".

Output format (strict):

Summary:
- 5-8 concise bullets grouped by theme.
- Each bullet should represent a distinct idea.

Possible actions:
- Up to 5 clear, actionable next steps inferred from the note.
- Actions should be phrased as commands (e.g. "Check...", "Decide...", "Prepare...").

Do not add anything else.`

// NoteGetter fetches a note by id. Satisfied by the Notes repository; the
// implementation must release the store hold before returning so the lock
// is never held across the network call.
type NoteGetter interface {
	Get(id string) (*types.Note, error)
}

// Summariser turns a stored note into a model-generated summary.
type Summariser struct {
	notes NoteGetter
	chat  *Client
	model string
}

// NewSummariser returns a Summariser that reads notes through the given
// getter and delegates to the chat client with a fixed model identifier.
func NewSummariser(notes NoteGetter, chat *Client, model string) *Summariser {
	return &Summariser{notes: notes, chat: chat, model: model}
}

// Summarise fetches the note, then sends its title and content to the
// model. The note read completes (and the store lock is released) before
// the network call starts. Errors from the note lookup and from the chat
// client propagate unchanged; there is no retry.
func (s *Summariser) Summarise(ctx context.Context, noteID string) (string, error) {
	note, err := s.notes.Get(noteID)
	if err != nil {
		return "", err
	}

	userPrompt := fmt.Sprintf(
		"Summarise this note.\n\nTitle: %s\n\nContent:\n%s",
		note.Title, note.Content,
	)

	return s.chat.Chat(ctx, s.model, systemPrompt, userPrompt)
}
