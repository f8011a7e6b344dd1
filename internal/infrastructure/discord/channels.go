package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"tlogi/internal/domain/ticket"
	sharedConfig "tlogi/internal/shared/config"
	"tlogi/internal/shared/logger"
)

// panelCommand posts the ticket panel into the current channel. Staff run
// it once in a public channel; the panel's button is how users open tickets.
const panelCommand = "!ticketpanel"

const (
	panelTitle       = "Support Tickets"
	panelDescription = "Need help? Click the button below to open a private ticket with our staff."
	panelButtonLabel = "Open Ticket"
	embedColor       = 0x5865F2
)

// ChannelAllocator creates private ticket channels in the configured guild.
// It implements the application layer's ChannelAllocator port.
type ChannelAllocator struct {
	session *discordgo.Session
	cfg     sharedConfig.BotConfig
	logger  logger.Interface
}

func NewChannelAllocator(session *discordgo.Session, cfg sharedConfig.BotConfig, logger logger.Interface) *ChannelAllocator {
	return &ChannelAllocator{session: session, cfg: cfg, logger: logger}
}

// CreateTicketChannel creates a text channel visible only to the ticket
// owner, the bot, and the staff role.
func (a *ChannelAllocator) CreateTicketChannel(ctx context.Context, ownerID, username string) (string, string, error) {
	overwrites := []*discordgo.PermissionOverwrite{
		{
			// @everyone is the guild ID.
			ID:   a.cfg.GuildID,
			Type: discordgo.PermissionOverwriteTypeRole,
			Deny: discordgo.PermissionViewChannel,
		},
		{
			ID:    ownerID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		},
		{
			ID:    a.session.State.User.ID,
			Type:  discordgo.PermissionOverwriteTypeMember,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		},
	}
	if a.cfg.StaffRoleID != "" {
		overwrites = append(overwrites, &discordgo.PermissionOverwrite{
			ID:    a.cfg.StaffRoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: discordgo.PermissionViewChannel | discordgo.PermissionSendMessages | discordgo.PermissionReadMessageHistory,
		})
	}

	channel, err := a.session.GuildChannelCreateComplex(a.cfg.GuildID, discordgo.GuildChannelCreateData{
		Name:                 ticket.ChannelName(username),
		Type:                 discordgo.ChannelTypeGuildText,
		ParentID:             a.cfg.TicketCategoryID,
		PermissionOverwrites: overwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", "", fmt.Errorf("failed to create ticket channel: %w", err)
	}

	a.logger.Infow("ticket channel created",
		"channel_id", channel.ID, "owner_id", ownerID)

	return channel.ID, a.cfg.GuildID, nil
}

// PostTicketIntro greets the owner in the fresh channel and attaches the
// close button.
func (a *ChannelAllocator) PostTicketIntro(ctx context.Context, channelID, ownerID string) error {
	_, err := a.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: fmt.Sprintf("<@%s>", ownerID),
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Ticket opened",
				Description: "A staff member will be with you shortly. Describe your issue here; everything you write in this channel is part of your ticket.",
				Color:       embedColor,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Close Ticket",
						Style:    discordgo.DangerButton,
						CustomID: customIDCloseTicket,
					},
				},
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to post ticket intro: %w", err)
	}

	return nil
}

// handlePanelCommand posts the open-ticket panel in response to the staff
// command message.
func (b *Bot) handlePanelCommand(ctx context.Context, s *discordgo.Session, m *discordgo.MessageCreate) {
	member := m.Member
	if member == nil || !b.memberIsStaff(member) {
		return
	}

	_, err := s.ChannelMessageSendComplex(m.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       panelTitle,
				Description: panelDescription,
				Color:       embedColor,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    panelButtonLabel,
						Style:    discordgo.PrimaryButton,
						CustomID: customIDOpenTicket,
					},
				},
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		b.logger.Errorw("failed to post ticket panel", "channel_id", m.ChannelID, "error", err)
	}
}
