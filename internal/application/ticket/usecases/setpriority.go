package usecases

import (
	"context"
	"fmt"

	"tlogi/internal/domain/ticket"
	vo "tlogi/internal/domain/ticket/valueobjects"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type SetPriorityCommand struct {
	TicketID uint
	Priority string
}

type SetPriorityResult struct {
	TicketID uint   `json:"id"`
	Priority string `json:"priority"`
}

type SetPriorityExecutor interface {
	Execute(ctx context.Context, cmd SetPriorityCommand) (*SetPriorityResult, error)
}

type SetPriorityUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewSetPriorityUseCase(ticketRepo ticket.Repository, logger logger.Interface) *SetPriorityUseCase {
	return &SetPriorityUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *SetPriorityUseCase) Execute(ctx context.Context, cmd SetPriorityCommand) (*SetPriorityResult, error) {
	p := vo.Priority(cmd.Priority)
	if !p.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid priority: %s", cmd.Priority))
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}

	if err := t.ChangePriority(p); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket priority", "ticket_id", t.ID(), "error", err)
		return nil, errors.NewInternalError("failed to update ticket priority")
	}

	return &SetPriorityResult{TicketID: t.ID(), Priority: t.Priority().String()}, nil
}
