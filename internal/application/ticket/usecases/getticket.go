package usecases

import (
	"context"
	"fmt"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID uint
}

type GetTicketResult struct {
	Ticket TicketSummary `json:"ticket"`
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error)
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, userRepo: userRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	ownerName := ""
	owner, err := uc.userRepo.FindByDiscordID(ctx, t.OwnerID())
	if err != nil {
		uc.logger.Warnw("failed to resolve ticket owner", "ticket_id", t.ID(), "error", err)
	} else if owner != nil {
		ownerName = owner.Username()
	}

	return &GetTicketResult{Ticket: TicketSummary{
		TicketID:      t.ID(),
		Subject:       t.Subject(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		OwnerID:       t.OwnerID(),
		OwnerUsername: ownerName,
		ChannelID:     t.ChannelID(),
		CreatedAt:     t.CreatedAt(),
		ClosedAt:      t.ClosedAt(),
	}}, nil
}
