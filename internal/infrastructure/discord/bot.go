package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	ticketUC "tlogi/internal/application/ticket/usecases"
	"tlogi/internal/domain/ticket"
	"tlogi/internal/domain/user"
	sharedConfig "tlogi/internal/shared/config"
	"tlogi/internal/shared/logger"
)

// Bot owns the Discord gateway session and bridges guild activity into the
// ticket application layer: channel messages become ticket messages, and
// button/modal interactions open and close tickets.
type Bot struct {
	session *discordgo.Session
	cfg     sharedConfig.BotConfig

	createTicket ticketUC.CreateTicketExecutor
	closeTicket  ticketUC.CloseTicketExecutor
	postMessage  ticketUC.PostMessageExecutor

	ticketRepo ticket.Repository
	userRepo   user.Repository

	logger logger.Interface
}

type BotDeps struct {
	CreateTicket ticketUC.CreateTicketExecutor
	CloseTicket  ticketUC.CloseTicketExecutor
	PostMessage  ticketUC.PostMessageExecutor
	TicketRepo   ticket.Repository
	UserRepo     user.Repository
	Logger       logger.Interface
}

// NewSession builds the gateway session. It is created separately from the
// Bot so the notifier and channel allocator adapters can be constructed
// against it before the use cases are wired.
func NewSession(cfg sharedConfig.BotConfig) (*discordgo.Session, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return session, nil
}

func NewBot(session *discordgo.Session, cfg sharedConfig.BotConfig, deps BotDeps) *Bot {
	b := &Bot{
		session:      session,
		cfg:          cfg,
		createTicket: deps.CreateTicket,
		closeTicket:  deps.CloseTicket,
		postMessage:  deps.PostMessage,
		ticketRepo:   deps.TicketRepo,
		userRepo:     deps.UserRepo,
		logger:       deps.Logger,
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onInteractionCreate)

	return b
}

// Start opens the gateway connection. It returns once connected; events are
// dispatched on the session's goroutines.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to connect to discord: %w", err)
	}
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

// Session exposes the underlying gateway session for the notifier and
// channel allocator adapters.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.logger.Infow("discord gateway connected",
		"username", r.User.Username, "guilds", len(r.Guilds))
}

// onMessageCreate records guild messages sent inside ticket channels and
// handles the staff panel command.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	ctx := context.Background()

	if strings.TrimSpace(m.Content) == panelCommand {
		b.handlePanelCommand(ctx, s, m)
		return
	}

	t, err := b.ticketRepo.FindByChannelID(ctx, m.ChannelID)
	if err != nil {
		b.logger.Errorw("failed to resolve channel to ticket", "channel_id", m.ChannelID, "error", err)
		return
	}
	if t == nil {
		return
	}

	b.upsertAuthor(ctx, m.Author)

	if _, err := b.postMessage.Execute(ctx, ticketUC.PostMessageCommand{
		TicketID:       t.ID(),
		AuthorID:       m.Author.ID,
		AuthorUsername: m.Author.Username,
		Body:           m.Content,
	}); err != nil {
		b.logger.Errorw("failed to record ticket message",
			"ticket_id", t.ID(), "author_id", m.Author.ID, "error", err)
	}
}

// upsertAuthor keeps the users table fresh so transcripts and the dashboard
// can resolve author names without asking Discord.
func (b *Bot) upsertAuthor(ctx context.Context, author *discordgo.User) {
	u, err := user.NewUser(author.ID, author.Username, author.Avatar)
	if err != nil {
		return
	}
	if err := b.userRepo.Upsert(ctx, u); err != nil {
		b.logger.Warnw("failed to upsert message author", "discord_id", author.ID, "error", err)
	}
}

// memberIsStaff reports whether the member holds the configured staff role.
// Without a configured role only ticket owners pass authorization checks.
func (b *Bot) memberIsStaff(member *discordgo.Member) bool {
	if b.cfg.StaffRoleID == "" || member == nil {
		return false
	}
	for _, roleID := range member.Roles {
		if roleID == b.cfg.StaffRoleID {
			return true
		}
	}
	return false
}
