package usecases

import "context"

// BotNotifier delivers ticket events to the Discord bot. The dashboard
// process talks to the bot's internal webhook over HTTP; the bot process
// wires a direct implementation.
type BotNotifier interface {
	SendStaffReply(ctx context.Context, ticketID uint, staffUsername, message string) error
	SendTranscript(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error
	DeleteTicketChannel(ctx context.Context, ticketID uint) error
}

// ChannelAllocator creates the private Discord channel backing a ticket
// and posts the introductory message with the close affordance.
type ChannelAllocator interface {
	CreateTicketChannel(ctx context.Context, ownerID, username string) (channelID, guildID string, err error)
	PostTicketIntro(ctx context.Context, channelID, ownerID string) error
}
