package ticket

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	vo "tlogi/internal/domain/ticket/valueobjects"
)

const (
	// MaxSubjectLength caps the subject collected from the Discord modal
	// and mirrors the modal input limit.
	MaxSubjectLength = 100

	// publicTokenBytes is the entropy of the unauthenticated transcript
	// credential. 24 bytes hex-encoded yields a 48-character token.
	publicTokenBytes = 24

	// DefaultSubject is used when the submitted subject is blank.
	DefaultSubject = "New Ticket"
)

type Ticket struct {
	id             uint
	subject        string
	status         vo.Status
	priority       vo.Priority
	ownerID        string
	channelID      string
	guildID        string
	publicToken    string
	transcriptSent bool
	createdAt      time.Time
	closedAt       *time.Time
}

// NewTicket creates an open ticket for a Discord user. ownerID and
// channelID are Discord snowflakes and therefore strings.
func NewTicket(subject, ownerID, channelID, guildID string) (*Ticket, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = DefaultSubject
	}
	if len(subject) > MaxSubjectLength {
		subject = subject[:MaxSubjectLength]
	}
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID is required")
	}
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}

	return &Ticket{
		subject:   subject,
		status:    vo.StatusOpen,
		priority:  vo.PriorityMedium,
		ownerID:   ownerID,
		channelID: channelID,
		guildID:   guildID,
		createdAt: time.Now(),
	}, nil
}

func ReconstructTicket(
	id uint,
	subject string,
	status vo.Status,
	priority vo.Priority,
	ownerID string,
	channelID string,
	guildID string,
	publicToken string,
	transcriptSent bool,
	createdAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:             id,
		subject:        subject,
		status:         status,
		priority:       priority,
		ownerID:        ownerID,
		channelID:      channelID,
		guildID:        guildID,
		publicToken:    publicToken,
		transcriptSent: transcriptSent,
		createdAt:      createdAt,
		closedAt:       closedAt,
	}, nil
}

func (t *Ticket) ID() uint              { return t.id }
func (t *Ticket) Subject() string       { return t.subject }
func (t *Ticket) Status() vo.Status     { return t.status }
func (t *Ticket) Priority() vo.Priority { return t.priority }
func (t *Ticket) OwnerID() string       { return t.ownerID }
func (t *Ticket) ChannelID() string     { return t.channelID }
func (t *Ticket) GuildID() string       { return t.guildID }
func (t *Ticket) PublicToken() string   { return t.publicToken }
func (t *Ticket) TranscriptSent() bool  { return t.transcriptSent }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }
func (t *Ticket) ClosedAt() *time.Time  { return t.closedAt }

func (t *Ticket) IsOpen() bool   { return t.status.IsOpen() }
func (t *Ticket) IsClosed() bool { return t.status.IsClosed() }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangePriority updates the ticket priority. Invalid values are rejected
// and the current priority is left unchanged.
func (t *Ticket) ChangePriority(p vo.Priority) error {
	if !p.IsValid() {
		return fmt.Errorf("invalid priority: %s", p)
	}
	t.priority = p
	return nil
}

// Close marks the ticket closed. Closing an already-closed ticket is a
// no-op on status and closedAt, keeping closedAt stable across repeated
// close calls; callers decide whether to re-deliver the transcript.
func (t *Ticket) Close() {
	if t.status.IsClosed() {
		return
	}
	t.status = vo.StatusClosed
	now := time.Now()
	t.closedAt = &now
}

// EnsurePublicToken lazily generates the unauthenticated transcript
// credential. The token is immutable once set.
func (t *Ticket) EnsurePublicToken() (string, error) {
	if t.publicToken != "" {
		return t.publicToken, nil
	}

	b := make([]byte, publicTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate public token: %w", err)
	}
	t.publicToken = hex.EncodeToString(b)
	return t.publicToken, nil
}

func (t *Ticket) MarkTranscriptSent() {
	t.transcriptSent = true
}

var channelNamePattern = regexp.MustCompile(`[^a-z0-9-]`)

// ChannelName derives the Discord channel name for a ticket owner,
// lowercased with anything outside [a-z0-9-] stripped.
func ChannelName(username string) string {
	return channelNamePattern.ReplaceAllString(strings.ToLower("ticket-"+username), "")
}
