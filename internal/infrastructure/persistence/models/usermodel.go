package models

type UserModel struct {
	DiscordID string `gorm:"primaryKey;size:32"`
	Username  string `gorm:"size:100;not null"`
	Avatar    string `gorm:"size:255"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

// StaffUserModel is a side table keyed by the same Discord ID as users.
// A row's existence is what grants dashboard access.
type StaffUserModel struct {
	DiscordID    string `gorm:"primaryKey;size:32"`
	Role         string `gorm:"size:20;not null"`
	IsSuperAdmin bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (StaffUserModel) TableName() string {
	return "staff_users"
}
