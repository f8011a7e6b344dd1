package mappers

import (
	"time"

	"tlogi/internal/domain/ticket"
	vo "tlogi/internal/domain/ticket/valueobjects"
	"tlogi/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	MessageToModel(m *ticket.Message) *models.TicketMessageModel
	MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		Subject:        t.Subject(),
		Status:         t.Status().String(),
		Priority:       t.Priority().String(),
		OwnerID:        t.OwnerID(),
		ChannelID:      t.ChannelID(),
		GuildID:        t.GuildID(),
		TranscriptSent: t.TranscriptSent(),
		CreatedAt:      t.CreatedAt().UnixMilli(),
	}

	// Unset tokens persist as NULL so the unique index only applies to
	// tickets that actually have one.
	if token := t.PublicToken(); token != "" {
		model.PublicToken = &token
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	var closedAt *time.Time
	if model.ClosedAt != nil {
		t := millisToTime(*model.ClosedAt)
		closedAt = &t
	}

	token := ""
	if model.PublicToken != nil {
		token = *model.PublicToken
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		vo.Status(model.Status),
		vo.Priority(model.Priority),
		model.OwnerID,
		model.ChannelID,
		model.GuildID,
		token,
		model.TranscriptSent,
		millisToTime(model.CreatedAt),
		closedAt,
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.TicketMessageModel {
	return &models.TicketMessageModel{
		ID:        msg.ID(),
		TicketID:  msg.TicketID(),
		AuthorID:  msg.AuthorID(),
		Body:      msg.Body(),
		CreatedAt: msg.CreatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.TicketMessageModel) (*ticket.Message, error) {
	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Body,
		millisToTime(model.CreatedAt),
	)
}

func millisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
