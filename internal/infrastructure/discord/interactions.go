package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	ticketUC "tlogi/internal/application/ticket/usecases"
	"tlogi/internal/shared/errors"
)

const (
	customIDOpenTicket   = "open_ticket"
	customIDCloseTicket  = "close_ticket"
	customIDSubjectModal = "ticket_subject_modal"
	customIDSubjectInput = "ticket_subject"
)

// componentHandlers dispatches button presses by custom ID. Adding a new
// button is one entry here plus its handler.
var componentHandlers = map[string]func(*Bot, context.Context, *discordgo.Session, *discordgo.InteractionCreate){
	customIDOpenTicket:  (*Bot).handleOpenTicketButton,
	customIDCloseTicket: (*Bot).handleCloseTicketButton,
}

var modalHandlers = map[string]func(*Bot, context.Context, *discordgo.Session, *discordgo.InteractionCreate){
	customIDSubjectModal: (*Bot).handleSubjectModalSubmit,
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	switch i.Type {
	case discordgo.InteractionMessageComponent:
		if handler, ok := componentHandlers[i.MessageComponentData().CustomID]; ok {
			handler(b, ctx, s, i)
		}
	case discordgo.InteractionModalSubmit:
		if handler, ok := modalHandlers[i.ModalSubmitData().CustomID]; ok {
			handler(b, ctx, s, i)
		}
	}
}

// handleOpenTicketButton prompts for the subject. The open-ticket pre-check
// runs at submit time; the modal itself is always offered.
func (b *Bot) handleOpenTicketButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: customIDSubjectModal,
			Title:    "Open a Support Ticket",
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    customIDSubjectInput,
							Label:       "What do you need help with?",
							Style:       discordgo.TextInputShort,
							Placeholder: "Briefly describe your issue",
							Required:    false,
							MaxLength:   100,
						},
					},
				},
			},
		},
	})
	if err != nil {
		b.logger.Errorw("failed to open subject modal", "error", err)
	}
}

func (b *Bot) handleSubjectModalSubmit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, username := interactionUser(i)
	if userID == "" {
		return
	}

	subject := ""
	for _, row := range i.ModalSubmitData().Components {
		actionsRow, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, comp := range actionsRow.Components {
			if input, ok := comp.(*discordgo.TextInput); ok && input.CustomID == customIDSubjectInput {
				subject = input.Value
			}
		}
	}

	result, err := b.createTicket.Execute(ctx, ticketUC.CreateTicketCommand{
		OwnerID:  userID,
		Username: username,
		Subject:  subject,
	})
	if err != nil {
		if errors.IsConflictError(err) {
			appErr := errors.GetAppError(err)
			content := "You already have an open ticket."
			if appErr != nil && appErr.Details != "" {
				content = fmt.Sprintf("You already have an open ticket: <#%s>", appErr.Details)
			}
			b.respondEphemeral(s, i, content)
			return
		}
		b.logger.Errorw("failed to create ticket from modal", "owner_id", userID, "error", err)
		b.respondEphemeral(s, i, "Something went wrong creating your ticket. Please try again later.")
		return
	}

	b.respondEphemeral(s, i, fmt.Sprintf("Your ticket has been created: <#%s>", result.ChannelID))
}

// handleCloseTicketButton closes the ticket behind the channel the button
// lives in. Only the ticket owner or a staff member may close.
func (b *Bot) handleCloseTicketButton(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID, _ := interactionUser(i)
	if userID == "" {
		return
	}

	t, err := b.ticketRepo.FindByChannelID(ctx, i.ChannelID)
	if err != nil {
		b.logger.Errorw("failed to resolve channel to ticket", "channel_id", i.ChannelID, "error", err)
		b.respondEphemeral(s, i, "Something went wrong. Please try again later.")
		return
	}
	if t == nil {
		b.respondEphemeral(s, i, "This channel is not a ticket.")
		return
	}

	if t.OwnerID() != userID && !b.memberIsStaff(i.Member) {
		b.respondEphemeral(s, i, "Only the ticket owner or staff can close this ticket.")
		return
	}

	b.respondEphemeral(s, i, "Closing your ticket. A transcript will be sent to your DMs.")

	if _, err := b.closeTicket.Execute(ctx, ticketUC.CloseTicketCommand{
		TicketID: t.ID(),
		ClosedBy: userID,
	}); err != nil {
		b.logger.Errorw("failed to close ticket", "ticket_id", t.ID(), "error", err)
	}
}

func (b *Bot) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Warnw("failed to respond to interaction", "error", err)
	}
}

// interactionUser extracts the acting user from either a guild or a DM
// interaction.
func interactionUser(i *discordgo.InteractionCreate) (id, username string) {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID, i.Member.User.Username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}
