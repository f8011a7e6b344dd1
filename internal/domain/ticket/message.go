package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Message is a single ticket conversation entry. Messages are append-only
// and ordered by creation time ascending.
type Message struct {
	id        uint
	ticketID  uint
	authorID  string
	body      string
	createdAt time.Time
}

func NewMessage(ticketID uint, authorID, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == "" {
		return nil, fmt.Errorf("author ID is required")
	}
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("message body is required")
	}

	return &Message{
		ticketID:  ticketID,
		authorID:  authorID,
		body:      strings.TrimSpace(body),
		createdAt: time.Now(),
	}, nil
}

func ReconstructMessage(id, ticketID uint, authorID, body string, createdAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:        id,
		ticketID:  ticketID,
		authorID:  authorID,
		body:      body,
		createdAt: createdAt,
	}, nil
}

func (m *Message) ID() uint             { return m.id }
func (m *Message) TicketID() uint       { return m.ticketID }
func (m *Message) AuthorID() string     { return m.authorID }
func (m *Message) Body() string         { return m.body }
func (m *Message) CreatedAt() time.Time { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
