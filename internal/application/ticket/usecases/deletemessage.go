package usecases

import (
	"context"
	"fmt"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type DeleteMessageCommand struct {
	TicketID  uint
	MessageID uint
}

type DeleteMessageExecutor interface {
	Execute(ctx context.Context, cmd DeleteMessageCommand) error
}

type DeleteMessageUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewDeleteMessageUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, cmd DeleteMessageCommand) error {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := uc.messageRepo.Delete(ctx, cmd.TicketID, cmd.MessageID); err != nil {
		uc.logger.Errorw("failed to delete message",
			"ticket_id", cmd.TicketID, "message_id", cmd.MessageID, "error", err)
		return errors.NewInternalError("failed to delete message")
	}

	return nil
}
