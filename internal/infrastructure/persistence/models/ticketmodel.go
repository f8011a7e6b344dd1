package models

type TicketModel struct {
	ID             uint   `gorm:"primaryKey"`
	Subject        string `gorm:"size:100;not null"`
	Status         string `gorm:"size:20;not null;index"`
	Priority       string `gorm:"size:20;not null;index"`
	OwnerID        string `gorm:"size:32;not null;index"`
	ChannelID      string `gorm:"size:32;not null;index"`
	GuildID        string `gorm:"size:32"`
	// Nullable pointer: open tickets have no token yet, and a unique index
	// over empty strings would reject every second tokenless row. NULL is
	// exempt from UNIQUE; '' is not.
	PublicToken    *string `gorm:"size:64;uniqueIndex"`
	TranscriptSent bool   `gorm:"not null;default:false"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`
	ClosedAt       *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketMessageModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  string `gorm:"size:32;not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (TicketMessageModel) TableName() string {
	return "ticket_messages"
}
