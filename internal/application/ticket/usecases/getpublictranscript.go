package usecases

import (
	"context"
	"time"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type GetPublicTranscriptCommand struct {
	Token string
}

type GetPublicTranscriptResult struct {
	Subject   string        `json:"subject"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	ClosedAt  *time.Time    `json:"closed_at,omitempty"`
	Messages  []MessageView `json:"messages"`
}

type GetPublicTranscriptExecutor interface {
	Execute(ctx context.Context, cmd GetPublicTranscriptCommand) (*GetPublicTranscriptResult, error)
}

type GetPublicTranscriptUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo ticket.MessageRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewGetPublicTranscriptUseCase(
	ticketRepo ticket.Repository,
	messageRepo ticket.MessageRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetPublicTranscriptUseCase {
	return &GetPublicTranscriptUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute resolves a transcript by its public token. The token is the only
// credential; unknown tokens are a plain not-found, with no hint whether a
// ticket exists.
func (uc *GetPublicTranscriptUseCase) Execute(ctx context.Context, cmd GetPublicTranscriptCommand) (*GetPublicTranscriptResult, error) {
	if cmd.Token == "" {
		return nil, errors.NewNotFoundError("transcript not found")
	}

	t, err := uc.ticketRepo.FindByPublicToken(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("transcript not found")
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list transcript messages", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	names := resolveAuthorNames(ctx, uc.userRepo, messages, uc.logger, t.ID())

	return &GetPublicTranscriptResult{
		Subject:   t.Subject(),
		Status:    t.Status().String(),
		CreatedAt: t.CreatedAt(),
		ClosedAt:  t.ClosedAt(),
		Messages:  messageViews(messages, names),
	}, nil
}
