package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tlogi/internal/application/ticket/usecases"
	"tlogi/internal/interfaces/http/middleware"
	"tlogi/internal/shared/errors"
	"tlogi/internal/shared/logger"
)

type mockListTickets struct {
	executeFunc func(ctx context.Context, cmd usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error)
}

func (m *mockListTickets) Execute(ctx context.Context, cmd usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockGetTicket struct {
	executeFunc func(ctx context.Context, cmd usecases.GetTicketCommand) (*usecases.GetTicketResult, error)
}

func (m *mockGetTicket) Execute(ctx context.Context, cmd usecases.GetTicketCommand) (*usecases.GetTicketResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockPostMessage struct {
	executeFunc func(ctx context.Context, cmd usecases.PostMessageCommand) (*usecases.PostMessageResult, error)
}

func (m *mockPostMessage) Execute(ctx context.Context, cmd usecases.PostMessageCommand) (*usecases.PostMessageResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockSetPriority struct {
	executeFunc func(ctx context.Context, cmd usecases.SetPriorityCommand) (*usecases.SetPriorityResult, error)
}

func (m *mockSetPriority) Execute(ctx context.Context, cmd usecases.SetPriorityCommand) (*usecases.SetPriorityResult, error) {
	return m.executeFunc(ctx, cmd)
}

type mockCloseTicket struct {
	executeFunc func(ctx context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error)
}

func (m *mockCloseTicket) Execute(ctx context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error) {
	return m.executeFunc(ctx, cmd)
}

type handlerNoopLogger struct{}

func (handlerNoopLogger) Debug(msg string, args ...any)                   {}
func (handlerNoopLogger) Info(msg string, args ...any)                    {}
func (handlerNoopLogger) Warn(msg string, args ...any)                    {}
func (handlerNoopLogger) Error(msg string, args ...any)                   {}
func (l handlerNoopLogger) With(args ...any) logger.Interface             { return l }
func (l handlerNoopLogger) Named(name string) logger.Interface            { return l }
func (handlerNoopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (handlerNoopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (handlerNoopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (handlerNoopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

type ticketHandlerMocks struct {
	list        *mockListTickets
	get         *mockGetTicket
	postMessage *mockPostMessage
	setPriority *mockSetPriority
	closeTicket *mockCloseTicket
}

func newTicketHandlerForTest() (*TicketHandler, *ticketHandlerMocks) {
	mocks := &ticketHandlerMocks{
		list:        &mockListTickets{},
		get:         &mockGetTicket{},
		postMessage: &mockPostMessage{},
		setPriority: &mockSetPriority{},
		closeTicket: &mockCloseTicket{},
	}
	h := NewTicketHandler(
		mocks.list, mocks.get, nil, mocks.postMessage,
		mocks.setPriority, mocks.closeTicket, nil, nil, nil,
		handlerNoopLogger{},
	)
	return h, mocks
}

// sessionStub plays the role of the auth middleware in tests.
func sessionStub(discordID, username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyDiscordID, discordID)
		c.Set(middleware.ContextKeyUsername, username)
	}
}

func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTicketHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, mocks := newTicketHandlerForTest()

	mocks.list.executeFunc = func(ctx context.Context, cmd usecases.ListTicketsCommand) (*usecases.ListTicketsResult, error) {
		return &usecases.ListTicketsResult{Tickets: []usecases.TicketSummary{
			{TicketID: 2, Subject: "newest"},
			{TicketID: 1, Subject: "oldest"},
		}}, nil
	}

	router := gin.New()
	router.GET("/tickets", h.List)

	w := performJSON(t, router, http.MethodGet, "/tickets", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "newest")
	assert.Contains(t, w.Body.String(), "oldest")
}

func TestTicketHandler_Get_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTicketHandlerForTest()

	router := gin.New()
	router.GET("/tickets/:id", h.Get)

	w := performJSON(t, router, http.MethodGet, "/tickets/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Get_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, mocks := newTicketHandlerForTest()

	mocks.get.executeFunc = func(ctx context.Context, cmd usecases.GetTicketCommand) (*usecases.GetTicketResult, error) {
		return nil, errors.NewNotFoundError("ticket 42 not found")
	}

	router := gin.New()
	router.GET("/tickets/:id", h.Get)

	w := performJSON(t, router, http.MethodGet, "/tickets/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_PostMessage_AuthorFromSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, mocks := newTicketHandlerForTest()

	var got usecases.PostMessageCommand
	mocks.postMessage.executeFunc = func(ctx context.Context, cmd usecases.PostMessageCommand) (*usecases.PostMessageResult, error) {
		got = cmd
		return &usecases.PostMessageResult{MessageID: 7, TicketID: cmd.TicketID}, nil
	}

	router := gin.New()
	router.POST("/tickets/:id/messages", sessionStub("staff-9", "carol"), h.PostMessage)

	w := performJSON(t, router, http.MethodPost, "/tickets/3/messages",
		gin.H{"message": "hello from the dashboard", "discord_user_id": "spoofed"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), got.TicketID)
	assert.Equal(t, "staff-9", got.AuthorID)
	assert.Equal(t, "carol", got.AuthorUsername)
	assert.True(t, got.FromStaff)
}

func TestTicketHandler_PostMessage_MissingBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, _ := newTicketHandlerForTest()

	router := gin.New()
	router.POST("/tickets/:id/messages", sessionStub("staff-9", "carol"), h.PostMessage)

	w := performJSON(t, router, http.MethodPost, "/tickets/3/messages", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_SetPriority_InvalidValue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, mocks := newTicketHandlerForTest()

	mocks.setPriority.executeFunc = func(ctx context.Context, cmd usecases.SetPriorityCommand) (*usecases.SetPriorityResult, error) {
		return nil, errors.NewValidationError("invalid priority: urgent")
	}

	router := gin.New()
	router.POST("/tickets/:id/priority", h.SetPriority)

	w := performJSON(t, router, http.MethodPost, "/tickets/3/priority", gin.H{"priority": "urgent"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTicketHandler_Close(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h, mocks := newTicketHandlerForTest()

	var got usecases.CloseTicketCommand
	mocks.closeTicket.executeFunc = func(ctx context.Context, cmd usecases.CloseTicketCommand) (*usecases.CloseTicketResult, error) {
		got = cmd
		return &usecases.CloseTicketResult{TicketID: cmd.TicketID, Status: "closed"}, nil
	}

	router := gin.New()
	router.POST("/tickets/:id/close", sessionStub("staff-9", "carol"), h.Close)

	w := performJSON(t, router, http.MethodPost, "/tickets/5/close", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(5), got.TicketID)
	assert.Equal(t, "staff-9", got.ClosedBy)
	assert.Contains(t, w.Body.String(), "closed")
}
