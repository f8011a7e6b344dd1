package usecases

import (
	"context"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type CreateTicketCommand struct {
	OwnerID  string
	Username string
	Subject  string
}

type CreateTicketResult struct {
	TicketID  uint   `json:"id"`
	Subject   string `json:"subject"`
	ChannelID string `json:"discord_channel_id"`
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	channels   ChannelAllocator
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	channels ChannelAllocator,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		channels:   channels,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	if cmd.OwnerID == "" {
		return nil, errors.NewValidationError("owner ID is required")
	}

	// Pre-check only; there is no unique constraint, so two concurrent
	// requests from the same owner can both pass. Accepted race.
	existing, err := uc.ticketRepo.FindOpenByOwner(ctx, cmd.OwnerID)
	if err != nil {
		uc.logger.Errorw("failed to check for open ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to check for open ticket")
	}
	if existing != nil {
		return nil, errors.NewConflictError("user already has an open ticket", existing.ChannelID())
	}

	channelID, guildID, err := uc.channels.CreateTicketChannel(ctx, cmd.OwnerID, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to create ticket channel", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to create ticket channel")
	}

	t, err := ticket.NewTicket(cmd.Subject, cmd.OwnerID, channelID, guildID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "owner_id", cmd.OwnerID, "error", err)
		return nil, errors.NewInternalError("failed to save ticket")
	}

	if err := uc.channels.PostTicketIntro(ctx, channelID, cmd.OwnerID); err != nil {
		// The ticket exists either way; the intro is decoration.
		uc.logger.Warnw("failed to post ticket intro", "ticket_id", t.ID(), "error", err)
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "owner_id", cmd.OwnerID, "channel_id", channelID)

	return &CreateTicketResult{
		TicketID:  t.ID(),
		Subject:   t.Subject(),
		ChannelID: channelID,
	}, nil
}
