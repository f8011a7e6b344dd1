package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type PostMessageCommand struct {
	TicketID uint
	AuthorID string
	// AuthorUsername tags staff replies relayed into Discord.
	AuthorUsername string
	Body           string
	// FromStaff marks dashboard-originated messages, which are relayed
	// to the bot for delivery into the ticket channel.
	FromStaff bool
}

type PostMessageResult struct {
	MessageID uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  string    `json:"discord_user_id"`
	Body      string    `json:"message"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PostMessageExecutor interface {
	Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error)
}

type PostMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	notifier    BotNotifier
	logger      logger.Interface
}

func NewPostMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	notifier BotNotifier,
	logger logger.Interface,
) *PostMessageUseCase {
	return &PostMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *PostMessageUseCase) Execute(ctx context.Context, cmd PostMessageCommand) (*PostMessageResult, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.NewValidationError("message is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if t.IsClosed() && !cmd.FromStaff {
		return nil, errors.NewForbiddenError("ticket is closed")
	}

	m, err := ticket.NewMessage(cmd.TicketID, cmd.AuthorID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, m); err != nil {
		uc.logger.Errorw("failed to save ticket message", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to save ticket message")
	}

	if cmd.FromStaff {
		staffName := cmd.AuthorUsername
		if staffName == "" {
			staffName = "Staff"
		}
		// Best effort: the message is already persisted; a relay failure
		// must not fail the request.
		if err := uc.notifier.SendStaffReply(ctx, t.ID(), staffName, m.Body()); err != nil {
			uc.logger.Warnw("failed to relay staff reply to bot", "ticket_id", t.ID(), "error", err)
		}
	}

	return &PostMessageResult{
		MessageID: m.ID(),
		TicketID:  m.TicketID(),
		AuthorID:  m.AuthorID(),
		Body:      m.Body(),
		Username:  cmd.AuthorUsername,
		CreatedAt: m.CreatedAt(),
	}, nil
}
