package usecases

import (
	"context"
	"fmt"
	"time"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type GetMessagesCommand struct {
	TicketID uint
}

type MessageView struct {
	MessageID uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  string    `json:"discord_user_id"`
	Username  string    `json:"username"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type GetMessagesResult struct {
	Messages []MessageView `json:"messages"`
}

type GetMessagesExecutor interface {
	Execute(ctx context.Context, cmd GetMessagesCommand) (*GetMessagesResult, error)
}

type GetMessagesUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetMessagesUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetMessagesUseCase {
	return &GetMessagesUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute returns a ticket's messages oldest first with author usernames
// resolved. Authors no longer known fall back to an empty username.
func (uc *GetMessagesUseCase) Execute(ctx context.Context, cmd GetMessagesCommand) (*GetMessagesResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket messages", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	names := resolveAuthorNames(ctx, uc.userRepo, messages, uc.logger, cmd.TicketID)

	return &GetMessagesResult{Messages: messageViews(messages, names)}, nil
}
