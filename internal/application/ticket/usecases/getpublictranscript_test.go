package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/domain/ticket"
	vo "tlogi/internal/domain/ticket/valueobjects"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/errors"
)

func TestGetPublicTranscriptUseCase_Execute(t *testing.T) {
	token := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	t.Run("returns transcript by token", func(t *testing.T) {
		closedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		tk, err := ticket.ReconstructTicket(
			1, "Help me", vo.StatusClosed, vo.PriorityMedium,
			"user-1", "chan-1", "guild-1", token, true,
			time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), &closedAt,
		)
		require.NoError(t, err)

		ticketRepo := &mockTicketRepo{
			findByPublicTokenFunc: func(ctx context.Context, tok string) (*ticket.Ticket, error) {
				if tok == token {
					return tk, nil
				}
				return nil, nil
			},
		}
		m1, err := ticket.ReconstructMessage(1, 1, "user-1", "hello", time.Date(2025, 3, 1, 10, 5, 0, 0, time.UTC))
		require.NoError(t, err)
		m2, err := ticket.ReconstructMessage(2, 1, "staff-1", "hi, how can we help?", time.Date(2025, 3, 1, 10, 6, 0, 0, time.UTC))
		require.NoError(t, err)
		messageRepo := &mockMessageRepo{
			listByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
				return []*ticket.Message{m1, m2}, nil
			},
		}
		alice, err := user.ReconstructUser("user-1", "alice", "", time.Now())
		require.NoError(t, err)
		userRepo := &mockUserRepo{
			findByDiscordIDsFunc: func(ctx context.Context, ids []string) (map[string]*user.User, error) {
				return map[string]*user.User{"user-1": alice}, nil
			},
		}

		uc := NewGetPublicTranscriptUseCase(ticketRepo, messageRepo, userRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), GetPublicTranscriptCommand{Token: token})

		require.NoError(t, err)
		assert.Equal(t, "Help me", result.Subject)
		assert.Equal(t, "closed", result.Status)
		require.Len(t, result.Messages, 2)
		assert.Equal(t, "alice", result.Messages[0].Username)
		assert.Equal(t, "", result.Messages[1].Username)
	})

	t.Run("unknown token is not found", func(t *testing.T) {
		uc := NewGetPublicTranscriptUseCase(&mockTicketRepo{}, &mockMessageRepo{}, &mockUserRepo{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPublicTranscriptCommand{Token: "nope"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("empty token is not found", func(t *testing.T) {
		uc := NewGetPublicTranscriptUseCase(&mockTicketRepo{}, &mockMessageRepo{}, &mockUserRepo{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), GetPublicTranscriptCommand{})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
