package usecases

import (
	"context"
	"fmt"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute removes the ticket and all of its messages. Messages go first so
// a failure never leaves orphaned rows behind a missing ticket.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}
	if t == nil {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := uc.messageRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket messages", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket messages")
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
