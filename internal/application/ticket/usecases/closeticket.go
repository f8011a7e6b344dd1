package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type CloseTicketCommand struct {
	TicketID uint
	// ClosedBy is recorded in logs only; closing is already authorized by
	// the caller (ticket owner, staff role, or dashboard staff session).
	ClosedBy string
}

type CloseTicketResult struct {
	TicketID    uint       `json:"id"`
	Status      string     `json:"status"`
	PublicToken string     `json:"public_token"`
	ClosedAt    *time.Time `json:"closed_at"`
}

type CloseTicketExecutor interface {
	Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error)
}

type CloseTicketUseCase struct {
	ticketRepo     ticket.Repository
	messageRepo    ticket.MessageRepository
	userRepo       user.Repository
	notifier       BotNotifier
	frontendOrigin string
	logger         logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	notifier BotNotifier,
	frontendOrigin string,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		userRepo:       userRepo,
		notifier:       notifier,
		frontendOrigin: frontendOrigin,
		logger:         logger,
	}
}

// Execute closes the ticket, DMs the owner the transcript with a public
// view link, and tears down the Discord channel. Closing an already-closed
// ticket succeeds and re-sends the transcript; closedAt stays at the first
// close.
func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*CloseTicketResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	token, err := t.EnsurePublicToken()
	if err != nil {
		uc.logger.Errorw("failed to generate public token", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate public token")
	}

	t.Close()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to close ticket", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to close ticket")
	}

	uc.logger.Infow("ticket closed", "ticket_id", t.ID(), "closed_by", cmd.ClosedBy)

	transcript, err := uc.renderTranscript(ctx, t)
	if err != nil {
		uc.logger.Warnw("failed to render transcript", "ticket_id", t.ID(), "error", err)
		transcript = ticket.EmptyTranscript
	}

	viewURL := strings.TrimRight(uc.frontendOrigin, "/") + "/view/" + token

	// Transcript delivery and channel teardown are best effort: the ticket
	// is closed either way.
	if err := uc.notifier.SendTranscript(ctx, t.ID(), t.OwnerID(), transcript, viewURL); err != nil {
		uc.logger.Warnw("failed to send transcript", "ticket_id", t.ID(), "error", err)
	} else if !t.TranscriptSent() {
		t.MarkTranscriptSent()
		if err := uc.ticketRepo.Update(ctx, t); err != nil {
			uc.logger.Warnw("failed to record transcript delivery", "ticket_id", t.ID(), "error", err)
		}
	}

	if err := uc.notifier.DeleteTicketChannel(ctx, t.ID()); err != nil {
		uc.logger.Warnw("failed to delete ticket channel", "ticket_id", t.ID(), "error", err)
	}

	return &CloseTicketResult{
		TicketID:    t.ID(),
		Status:      t.Status().String(),
		PublicToken: token,
		ClosedAt:    t.ClosedAt(),
	}, nil
}

func (uc *CloseTicketUseCase) renderTranscript(ctx context.Context, t *ticket.Ticket) (string, error) {
	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		return "", err
	}

	names := resolveAuthorNames(ctx, uc.userRepo, messages, uc.logger, t.ID())
	return ticket.RenderTranscript(messages, names), nil
}
