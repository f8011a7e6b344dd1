package ticket

import (
	"strings"
	"time"
)

const (
	// UnknownAuthor labels transcript lines whose author could not be
	// resolved to a known user.
	UnknownAuthor = "Unknown user"

	// EmptyTranscript is the literal body delivered when a ticket closed
	// without any messages.
	EmptyTranscript = "No messages in this ticket."
)

// RenderTranscript builds the plain-text transcript for a ticket: one line
// per message, ascending by creation time, formatted as
// "[<ISO8601>] <author>: <body>". names maps author IDs to display names;
// unresolved authors fall back to UnknownAuthor.
func RenderTranscript(messages []*Message, names map[string]string) string {
	if len(messages) == 0 {
		return EmptyTranscript
	}

	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		name := names[m.AuthorID()]
		if name == "" {
			name = UnknownAuthor
		}
		ts := m.CreatedAt().UTC().Format(time.RFC3339)
		lines = append(lines, "["+ts+"] "+name+": "+m.Body())
	}

	return strings.Join(lines, "\n")
}
