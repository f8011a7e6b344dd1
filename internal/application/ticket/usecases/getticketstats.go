package usecases

import (
	"context"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/logger"
)

type GetTicketStatsCommand struct{}

type GetTicketStatsResult struct {
	OpenTickets   int64 `json:"open_tickets"`
	ClosedTickets int64 `json:"closed_tickets"`
	TotalTickets  int64 `json:"total_tickets"`
}

type GetTicketStatsExecutor interface {
	Execute(ctx context.Context, cmd GetTicketStatsCommand) (*GetTicketStatsResult, error)
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, cmd GetTicketStatsCommand) (*GetTicketStatsResult, error) {
	stats, err := uc.ticketRepo.GetStats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get ticket stats", "error", err)
		return nil, err
	}

	return &GetTicketStatsResult{
		OpenTickets:   stats.OpenTickets,
		ClosedTickets: stats.ClosedTickets,
		TotalTickets:  stats.TotalTickets,
	}, nil
}
