package ticket

import "context"

// Stats summarizes ticket counts for the dashboard.
type Stats struct {
	OpenTickets   int64
	ClosedTickets int64
	TotalTickets  int64
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByChannelID(ctx context.Context, channelID string) (*Ticket, error)
	FindByPublicToken(ctx context.Context, token string) (*Ticket, error)
	// FindOpenByOwner returns the owner's open ticket or nil when none
	// exists. The one-open-ticket-per-owner rule rests on this pre-check;
	// there is no database constraint, so two concurrent creates can race.
	FindOpenByOwner(ctx context.Context, ownerID string) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	GetStats(ctx context.Context) (*Stats, error)
}

type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Message, error)
	// Delete removes one message scoped by both IDs so a message can never
	// be deleted through another ticket's route.
	Delete(ctx context.Context, ticketID, messageID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
