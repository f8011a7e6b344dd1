package user

import "context"

// UserWithGrant is the admin listing row: every known user joined with
// its grant, if any.
type UserWithGrant struct {
	User  *User
	Grant *StaffGrant
}

type Repository interface {
	// Upsert inserts the user or refreshes username/avatar on conflict.
	Upsert(ctx context.Context, u *User) error
	FindByDiscordID(ctx context.Context, discordID string) (*User, error)
	FindByDiscordIDs(ctx context.Context, discordIDs []string) (map[string]*User, error)
	ListWithGrants(ctx context.Context) ([]*UserWithGrant, error)
}

type StaffGrantRepository interface {
	// Upsert inserts the grant or updates role/is_super_admin on conflict.
	Upsert(ctx context.Context, g *StaffGrant) error
	// Delete revokes access; revoking a non-existent grant is not an error.
	Delete(ctx context.Context, discordID string) error
	// FindByDiscordID returns nil when the user holds no grant.
	FindByDiscordID(ctx context.Context, discordID string) (*StaffGrant, error)
	Count(ctx context.Context) (int64, error)
}
