package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/domain/ticket"
	sharedConfig "tlogi/internal/shared/config"
	"tlogi/internal/shared/logger"
)

type stubNotifier struct {
	sendStaffReplyFunc      func(ctx context.Context, ticketID uint, staffUsername, message string) error
	sendTranscriptFunc      func(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error
	deleteTicketChannelFunc func(ctx context.Context, ticketID uint) error
}

func (s *stubNotifier) SendStaffReply(ctx context.Context, ticketID uint, staffUsername, message string) error {
	if s.sendStaffReplyFunc != nil {
		return s.sendStaffReplyFunc(ctx, ticketID, staffUsername, message)
	}
	return nil
}

func (s *stubNotifier) SendTranscript(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
	if s.sendTranscriptFunc != nil {
		return s.sendTranscriptFunc(ctx, ticketID, discordUserID, transcript, viewURL)
	}
	return nil
}

func (s *stubNotifier) DeleteTicketChannel(ctx context.Context, ticketID uint) error {
	if s.deleteTicketChannelFunc != nil {
		return s.deleteTicketChannelFunc(ctx, ticketID)
	}
	return nil
}

type stubTicketRepo struct {
	findByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
}

func (s *stubTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (s *stubTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (s *stubTicketRepo) Delete(ctx context.Context, id uint) error          { return nil }

func (s *stubTicketRepo) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if s.findByIDFunc != nil {
		return s.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (s *stubTicketRepo) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	return nil, nil
}

func (s *stubTicketRepo) FindByPublicToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return nil, nil
}

func (s *stubTicketRepo) FindOpenByOwner(ctx context.Context, ownerID string) (*ticket.Ticket, error) {
	return nil, nil
}

func (s *stubTicketRepo) List(ctx context.Context) ([]*ticket.Ticket, error) { return nil, nil }
func (s *stubTicketRepo) GetStats(ctx context.Context) (*ticket.Stats, error) {
	return &ticket.Stats{}, nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (noopLogger) With(args ...any) logger.Interface               { return noopLogger{} }
func (noopLogger) Named(name string) logger.Interface              { return noopLogger{} }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func performWebhook(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newTestWebhookServer(notifier *stubNotifier, repo *stubTicketRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := NewWebhookServer(notifier, repo, sharedConfig.BotConfig{}, noopLogger{})
	return srv.routes()
}

func openTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket("Need help", "user-1", "chan-1", "guild-1")
	require.NoError(t, err)
	return tk
}

func TestWebhookServer_HandleTranscript(t *testing.T) {
	body := map[string]any{
		"ticket_id":       1,
		"discord_user_id": "user-1",
		"transcript":      "hello",
	}

	t.Run("delivers transcript for a known user", func(t *testing.T) {
		repo := &stubTicketRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t), nil
			},
		}
		router := newTestWebhookServer(&stubNotifier{}, repo)

		rec := performWebhook(t, router, "/ticket-transcript", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown ticket is 404", func(t *testing.T) {
		router := newTestWebhookServer(&stubNotifier{}, &stubTicketRepo{})

		rec := performWebhook(t, router, "/ticket-transcript", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unresolvable discord user is 404", func(t *testing.T) {
		repo := &stubTicketRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t), nil
			},
		}
		notifier := &stubNotifier{
			sendTranscriptFunc: func(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
				return fmt.Errorf("user %s: %w", discordUserID, ErrUnknownUser)
			},
		}
		router := newTestWebhookServer(notifier, repo)

		rec := performWebhook(t, router, "/ticket-transcript", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "discord user not found")
	})

	t.Run("delivery failure is 500", func(t *testing.T) {
		repo := &stubTicketRepo{
			findByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t), nil
			},
		}
		notifier := &stubNotifier{
			sendTranscriptFunc: func(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
				return fmt.Errorf("gateway unavailable")
			},
		}
		router := newTestWebhookServer(notifier, repo)

		rec := performWebhook(t, router, "/ticket-transcript", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebhookServer_HandleDeleteChannel(t *testing.T) {
	body := map[string]any{"ticket_id": 1}

	t.Run("deletes the channel", func(t *testing.T) {
		router := newTestWebhookServer(&stubNotifier{}, &stubTicketRepo{})

		rec := performWebhook(t, router, "/ticket-delete-channel", body)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already-gone channel is 200 with a warning", func(t *testing.T) {
		notifier := &stubNotifier{
			deleteTicketChannelFunc: func(ctx context.Context, ticketID uint) error {
				return fmt.Errorf("channel chan-1: %w", ErrChannelGone)
			},
		}
		router := newTestWebhookServer(notifier, &stubTicketRepo{})

		rec := performWebhook(t, router, "/ticket-delete-channel", body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "already removed")
	})

	t.Run("unexpected failure is 500", func(t *testing.T) {
		notifier := &stubNotifier{
			deleteTicketChannelFunc: func(ctx context.Context, ticketID uint) error {
				return fmt.Errorf("missing permissions")
			},
		}
		router := newTestWebhookServer(notifier, &stubTicketRepo{})

		rec := performWebhook(t, router, "/ticket-delete-channel", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebhookServer_HandleStaffReply(t *testing.T) {
	t.Run("relay failure is 500", func(t *testing.T) {
		notifier := &stubNotifier{
			sendStaffReplyFunc: func(ctx context.Context, ticketID uint, staffUsername, message string) error {
				return fmt.Errorf("channel send failed")
			},
		}
		router := newTestWebhookServer(notifier, &stubTicketRepo{})

		rec := performWebhook(t, router, "/staff-reply", map[string]any{
			"ticket_id": 1,
			"username":  "mod",
			"message":   "hi",
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		router := newTestWebhookServer(&stubNotifier{}, &stubTicketRepo{})

		rec := performWebhook(t, router, "/staff-reply", map[string]any{"ticket_id": 1})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
