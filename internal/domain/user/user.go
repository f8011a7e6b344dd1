package user

import (
	"fmt"
	"time"
)

// User is a Discord identity seen by the helpdesk. Rows are upserted on
// every OAuth login and from inbound ticket messages; there is no
// deletion path.
type User struct {
	discordID string
	username  string
	avatar    string
	createdAt time.Time
}

func NewUser(discordID, username, avatar string) (*User, error) {
	if discordID == "" {
		return nil, fmt.Errorf("discord user ID is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		discordID: discordID,
		username:  username,
		avatar:    avatar,
		createdAt: time.Now(),
	}, nil
}

func ReconstructUser(discordID, username, avatar string, createdAt time.Time) (*User, error) {
	if discordID == "" {
		return nil, fmt.Errorf("discord user ID is required")
	}

	return &User{
		discordID: discordID,
		username:  username,
		avatar:    avatar,
		createdAt: createdAt,
	}, nil
}

func (u *User) DiscordID() string    { return u.discordID }
func (u *User) Username() string     { return u.username }
func (u *User) Avatar() string       { return u.avatar }
func (u *User) CreatedAt() time.Time { return u.createdAt }
