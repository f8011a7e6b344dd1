package usecases

import (
	"context"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

// resolveAuthorNames maps the distinct author IDs of messages to usernames.
// Lookup failures degrade to an empty map so callers can fall back to
// placeholder names instead of failing the read.
func resolveAuthorNames(
	ctx context.Context,
	userRepo user.Repository,
	messages []*ticket.Message,
	log logger.Interface,
	ticketID uint,
) map[string]string {
	authorIDs := make([]string, 0, len(messages))
	seen := make(map[string]bool, len(messages))
	for _, m := range messages {
		if !seen[m.AuthorID()] {
			seen[m.AuthorID()] = true
			authorIDs = append(authorIDs, m.AuthorID())
		}
	}

	names := make(map[string]string, len(authorIDs))
	if len(authorIDs) == 0 {
		return names
	}

	users, err := userRepo.FindByDiscordIDs(ctx, authorIDs)
	if err != nil {
		log.Warnw("failed to resolve message authors", "ticket_id", ticketID, "error", err)
		return names
	}
	for id, u := range users {
		names[id] = u.Username()
	}
	return names
}

func messageViews(messages []*ticket.Message, names map[string]string) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, MessageView{
			MessageID: m.ID(),
			TicketID:  m.TicketID(),
			AuthorID:  m.AuthorID(),
			Username:  names[m.AuthorID()],
			Body:      m.Body(),
			CreatedAt: m.CreatedAt(),
		})
	}
	return views
}
