package usecases

import (
	"context"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	"tlogi/internal/shared/logger"
)

type mockTicketRepo struct {
	saveFunc              func(ctx context.Context, t *ticket.Ticket) error
	updateFunc            func(ctx context.Context, t *ticket.Ticket) error
	deleteFunc            func(ctx context.Context, id uint) error
	findByIDFunc          func(ctx context.Context, id uint) (*ticket.Ticket, error)
	findByChannelIDFunc   func(ctx context.Context, channelID string) (*ticket.Ticket, error)
	findByPublicTokenFunc func(ctx context.Context, token string) (*ticket.Ticket, error)
	findOpenByOwnerFunc   func(ctx context.Context, ownerID string) (*ticket.Ticket, error)
	listFunc              func(ctx context.Context) ([]*ticket.Ticket, error)
	getStatsFunc          func(ctx context.Context) (*ticket.Stats, error)
}

func (m *mockTicketRepo) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepo) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindByChannelID(ctx context.Context, channelID string) (*ticket.Ticket, error) {
	if m.findByChannelIDFunc != nil {
		return m.findByChannelIDFunc(ctx, channelID)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindByPublicToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	if m.findByPublicTokenFunc != nil {
		return m.findByPublicTokenFunc(ctx, token)
	}
	return nil, nil
}

func (m *mockTicketRepo) FindOpenByOwner(ctx context.Context, ownerID string) (*ticket.Ticket, error) {
	if m.findOpenByOwnerFunc != nil {
		return m.findOpenByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockTicketRepo) List(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepo) GetStats(ctx context.Context) (*ticket.Stats, error) {
	if m.getStatsFunc != nil {
		return m.getStatsFunc(ctx)
	}
	return &ticket.Stats{}, nil
}

type mockMessageRepo struct {
	saveFunc             func(ctx context.Context, msg *ticket.Message) error
	listByTicketIDFunc   func(ctx context.Context, ticketID uint) ([]*ticket.Message, error)
	deleteFunc           func(ctx context.Context, ticketID, messageID uint) error
	deleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockMessageRepo) Save(ctx context.Context, msg *ticket.Message) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepo) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Message, error) {
	if m.listByTicketIDFunc != nil {
		return m.listByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepo) Delete(ctx context.Context, ticketID, messageID uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ticketID, messageID)
	}
	return nil
}

func (m *mockMessageRepo) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.deleteByTicketIDFunc != nil {
		return m.deleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockUserRepo struct {
	upsertFunc           func(ctx context.Context, u *user.User) error
	findByDiscordIDFunc  func(ctx context.Context, discordID string) (*user.User, error)
	findByDiscordIDsFunc func(ctx context.Context, discordIDs []string) (map[string]*user.User, error)
	listWithGrantsFunc   func(ctx context.Context) ([]*user.UserWithGrant, error)
}

func (m *mockUserRepo) Upsert(ctx context.Context, u *user.User) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) FindByDiscordID(ctx context.Context, discordID string) (*user.User, error) {
	if m.findByDiscordIDFunc != nil {
		return m.findByDiscordIDFunc(ctx, discordID)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByDiscordIDs(ctx context.Context, discordIDs []string) (map[string]*user.User, error) {
	if m.findByDiscordIDsFunc != nil {
		return m.findByDiscordIDsFunc(ctx, discordIDs)
	}
	return map[string]*user.User{}, nil
}

func (m *mockUserRepo) ListWithGrants(ctx context.Context) ([]*user.UserWithGrant, error) {
	if m.listWithGrantsFunc != nil {
		return m.listWithGrantsFunc(ctx)
	}
	return nil, nil
}

type mockNotifier struct {
	sendStaffReplyFunc      func(ctx context.Context, ticketID uint, staffUsername, message string) error
	sendTranscriptFunc      func(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error
	deleteTicketChannelFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockNotifier) SendStaffReply(ctx context.Context, ticketID uint, staffUsername, message string) error {
	if m.sendStaffReplyFunc != nil {
		return m.sendStaffReplyFunc(ctx, ticketID, staffUsername, message)
	}
	return nil
}

func (m *mockNotifier) SendTranscript(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
	if m.sendTranscriptFunc != nil {
		return m.sendTranscriptFunc(ctx, ticketID, discordUserID, transcript, viewURL)
	}
	return nil
}

func (m *mockNotifier) DeleteTicketChannel(ctx context.Context, ticketID uint) error {
	if m.deleteTicketChannelFunc != nil {
		return m.deleteTicketChannelFunc(ctx, ticketID)
	}
	return nil
}

type mockChannelAllocator struct {
	createTicketChannelFunc func(ctx context.Context, ownerID, username string) (string, string, error)
	postTicketIntroFunc     func(ctx context.Context, channelID, ownerID string) error
}

func (m *mockChannelAllocator) CreateTicketChannel(ctx context.Context, ownerID, username string) (string, string, error) {
	if m.createTicketChannelFunc != nil {
		return m.createTicketChannelFunc(ctx, ownerID, username)
	}
	return "channel-1", "guild-1", nil
}

func (m *mockChannelAllocator) PostTicketIntro(ctx context.Context, channelID, ownerID string) error {
	if m.postTicketIntroFunc != nil {
		return m.postTicketIntroFunc(ctx, channelID, ownerID)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
