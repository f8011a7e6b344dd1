package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tlogi/internal/domain/ticket"
	"tlogi/internal/shared/logger"
)

var (
	// ErrUnknownUser marks a Discord user ID the API cannot resolve, so no
	// DM channel can be opened for it.
	ErrUnknownUser = errors.New("unknown discord user")
	// ErrChannelGone marks a ticket channel that no longer exists on
	// Discord, usually because it was deleted by hand.
	ErrChannelGone = errors.New("ticket channel no longer exists")
)

// isDiscordErrCode reports whether err is a Discord API error carrying the
// given JSON error code.
func isDiscordErrCode(err error, code int) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == code
}

const (
	// maxMessageLength is Discord's hard cap on message content.
	maxMessageLength = 2000
	// chunkHeadroom leaves room for code fences or continuation markers the
	// sender may wrap around a chunk.
	chunkHeadroom = 10

	transcriptHeader = "Your ticket has been closed. Here is your transcript:"
)

// Notifier delivers ticket events straight through the gateway session. It
// implements the application layer's BotNotifier port for the bot process;
// the dashboard process uses the HTTP client instead.
type Notifier struct {
	session    *discordgo.Session
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewNotifier(session *discordgo.Session, ticketRepo ticket.Repository, logger logger.Interface) *Notifier {
	return &Notifier{session: session, ticketRepo: ticketRepo, logger: logger}
}

// SendStaffReply relays a dashboard staff message into the ticket channel.
func (n *Notifier) SendStaffReply(ctx context.Context, ticketID uint, staffUsername, message string) error {
	t, err := n.findTicket(ctx, ticketID)
	if err != nil {
		return err
	}

	content := fmt.Sprintf("**%s (Staff):** %s", staffUsername, message)
	for _, chunk := range chunkMessage(content) {
		if _, err := n.session.ChannelMessageSend(t.ChannelID(), chunk, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send staff reply: %w", err)
		}
	}

	return nil
}

// SendTranscript DMs the ticket owner the full transcript and the public
// view link.
func (n *Notifier) SendTranscript(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
	dm, err := n.session.UserChannelCreate(discordUserID, discordgo.WithContext(ctx))
	if err != nil {
		if isDiscordErrCode(err, discordgo.ErrCodeUnknownUser) {
			return fmt.Errorf("user %s: %w", discordUserID, ErrUnknownUser)
		}
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	if _, err := n.session.ChannelMessageSend(dm.ID, transcriptHeader, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send transcript header: %w", err)
	}

	for _, chunk := range chunkMessage(transcript) {
		if _, err := n.session.ChannelMessageSend(dm.ID, "```\n"+chunk+"\n```", discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send transcript chunk: %w", err)
		}
	}

	if viewURL != "" {
		link := "View it online: " + viewURL
		if _, err := n.session.ChannelMessageSend(dm.ID, link, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to send transcript link: %w", err)
		}
	}

	return nil
}

// DeleteTicketChannel removes the Discord channel backing a ticket.
func (n *Notifier) DeleteTicketChannel(ctx context.Context, ticketID uint) error {
	t, err := n.findTicket(ctx, ticketID)
	if err != nil {
		return err
	}

	if _, err := n.session.ChannelDelete(t.ChannelID(), discordgo.WithContext(ctx)); err != nil {
		if isDiscordErrCode(err, discordgo.ErrCodeUnknownChannel) {
			return fmt.Errorf("channel %s: %w", t.ChannelID(), ErrChannelGone)
		}
		return fmt.Errorf("failed to delete ticket channel: %w", err)
	}

	n.logger.Infow("ticket channel deleted", "ticket_id", ticketID, "channel_id", t.ChannelID())
	return nil
}

func (n *Notifier) findTicket(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	t, err := n.ticketRepo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("ticket %d not found", ticketID)
	}
	return t, nil
}

// chunkMessage splits text into pieces that fit under Discord's message
// limit with headroom to spare. Splits prefer newline boundaries so
// transcript lines stay intact.
func chunkMessage(text string) []string {
	limit := maxMessageLength - chunkHeadroom
	if text == "" {
		return nil
	}

	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= limit {
			chunks = append(chunks, string(runes))
			break
		}

		cut := limit
		// Back up to the last newline inside the window, if any.
		window := string(runes[:limit])
		if idx := strings.LastIndexByte(window, '\n'); idx > 0 {
			cut = len([]rune(window[:idx]))
			chunks = append(chunks, string(runes[:cut]))
			runes = runes[cut+1:] // skip the newline itself
			continue
		}

		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}

	return chunks
}
