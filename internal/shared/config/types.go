package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type SessionConfig struct {
	Secret     string `mapstructure:"secret"`
	ExpiryDays int    `mapstructure:"expiry_days"`
}

type CookieConfig struct {
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	SameSite string `mapstructure:"same_site"`
}

type AuthConfig struct {
	Session SessionConfig `mapstructure:"session"`
	Cookie  CookieConfig  `mapstructure:"cookie"`
}

type DiscordOAuthConfig struct {
	ClientID     string `mapstructure:"client_id"`
	ClientSecret string `mapstructure:"client_secret"`
	RedirectURL  string `mapstructure:"redirect_url"`
}

type OAuthConfig struct {
	Discord DiscordOAuthConfig `mapstructure:"discord"`
}

// BotConfig holds the Discord gateway credentials and the guild wiring the
// ticket channels live in. StaffRoleID is optional; without it only ticket
// owners can close tickets from Discord.
type BotConfig struct {
	Token            string `mapstructure:"token"`
	GuildID          string `mapstructure:"guild_id"`
	TicketCategoryID string `mapstructure:"ticket_category_id"`
	StaffRoleID      string `mapstructure:"staff_role_id"`
	WebhookHost      string `mapstructure:"webhook_host"`
	WebhookPort      int    `mapstructure:"webhook_port"`
}

func (c *BotConfig) WebhookAddr() string {
	return fmt.Sprintf("%s:%d", c.WebhookHost, c.WebhookPort)
}

type DashboardConfig struct {
	FrontendOrigin string `mapstructure:"frontend_origin"`
	BotURL         string `mapstructure:"bot_url"`
	UpdateFeedURL  string `mapstructure:"update_feed_url"`
}
