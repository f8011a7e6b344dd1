package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/errors"
)

func TestSetPriorityUseCase_Execute(t *testing.T) {
	t.Run("updates priority", func(t *testing.T) {
		tk := openTicketFixture(t, 1, "user-1", "chan-1")
		updated := false
		ticketRepo := &mockTicketRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
			updateFunc: func(ctx context.Context, t *ticket.Ticket) error {
				updated = true
				return nil
			},
		}

		uc := NewSetPriorityUseCase(ticketRepo, &mockLogger{})
		result, err := uc.Execute(context.Background(), SetPriorityCommand{TicketID: 1, Priority: "high"})

		require.NoError(t, err)
		assert.Equal(t, "high", result.Priority)
		assert.True(t, updated)
	})

	t.Run("invalid priority is rejected without touching the ticket", func(t *testing.T) {
		tk := openTicketFixture(t, 1, "user-1", "chan-1")
		ticketRepo := &mockTicketRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		}

		uc := NewSetPriorityUseCase(ticketRepo, &mockLogger{})
		_, err := uc.Execute(context.Background(), SetPriorityCommand{TicketID: 1, Priority: "urgent"})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Equal(t, "medium", tk.Priority().String())
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		uc := NewSetPriorityUseCase(&mockTicketRepo{}, &mockLogger{})
		_, err := uc.Execute(context.Background(), SetPriorityCommand{TicketID: 99, Priority: "low"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
