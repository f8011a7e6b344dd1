package usecases

import (
	"context"
	"time"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type ListTicketsCommand struct{}

type TicketSummary struct {
	TicketID      uint       `json:"id"`
	Subject       string     `json:"subject"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	OwnerID       string     `json:"discord_user_id"`
	OwnerUsername string     `json:"username"`
	ChannelID     string     `json:"discord_channel_id"`
	CreatedAt     time.Time  `json:"created_at"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
}

type ListTicketsResult struct {
	Tickets []TicketSummary `json:"tickets"`
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error)
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: logger}
}

// Execute lists all tickets newest first, with owner usernames resolved
// for the dashboard table.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	ownerIDs := make([]string, 0, len(tickets))
	seen := make(map[string]bool, len(tickets))
	for _, t := range tickets {
		if !seen[t.OwnerID()] {
			seen[t.OwnerID()] = true
			ownerIDs = append(ownerIDs, t.OwnerID())
		}
	}

	names := make(map[string]string, len(ownerIDs))
	if len(ownerIDs) > 0 {
		users, err := uc.userRepo.FindByDiscordIDs(ctx, ownerIDs)
		if err != nil {
			uc.logger.Warnw("failed to resolve ticket owners", "error", err)
		} else {
			for id, u := range users {
				names[id] = u.Username()
			}
		}
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, TicketSummary{
			TicketID:      t.ID(),
			Subject:       t.Subject(),
			Status:        t.Status().String(),
			Priority:      t.Priority().String(),
			OwnerID:       t.OwnerID(),
			OwnerUsername: names[t.OwnerID()],
			ChannelID:     t.ChannelID(),
			CreatedAt:     t.CreatedAt(),
			ClosedAt:      t.ClosedAt(),
		})
	}

	return &ListTicketsResult{Tickets: summaries}, nil
}
