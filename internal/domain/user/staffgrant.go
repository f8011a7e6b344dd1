package user

import "fmt"

// AccessLevel is the dashboard access tier assigned to a Discord user.
// "none" is represented by the absence of a StaffGrant row.
type AccessLevel string

const (
	AccessNone       AccessLevel = "none"
	AccessStaff      AccessLevel = "staff"
	AccessSuperAdmin AccessLevel = "super_admin"
)

func ParseAccessLevel(s string) (AccessLevel, error) {
	switch AccessLevel(s) {
	case AccessNone, AccessStaff, AccessSuperAdmin:
		return AccessLevel(s), nil
	}
	return "", fmt.Errorf("invalid access level: %q", s)
}

// StaffGrant gives a user dashboard access. It is a side table keyed by
// the same Discord ID as User: a weak reference, not ownership.
type StaffGrant struct {
	discordID    string
	role         AccessLevel
	isSuperAdmin bool
}

func NewStaffGrant(discordID string, level AccessLevel) (*StaffGrant, error) {
	if discordID == "" {
		return nil, fmt.Errorf("discord user ID is required")
	}
	if level != AccessStaff && level != AccessSuperAdmin {
		return nil, fmt.Errorf("grant level must be staff or super_admin, got %q", level)
	}

	return &StaffGrant{
		discordID:    discordID,
		role:         level,
		isSuperAdmin: level == AccessSuperAdmin,
	}, nil
}

func ReconstructStaffGrant(discordID string, role AccessLevel, isSuperAdmin bool) (*StaffGrant, error) {
	if discordID == "" {
		return nil, fmt.Errorf("discord user ID is required")
	}

	return &StaffGrant{
		discordID:    discordID,
		role:         role,
		isSuperAdmin: isSuperAdmin,
	}, nil
}

func (g *StaffGrant) DiscordID() string  { return g.discordID }
func (g *StaffGrant) Role() AccessLevel  { return g.role }
func (g *StaffGrant) IsSuperAdmin() bool { return g.isSuperAdmin }
