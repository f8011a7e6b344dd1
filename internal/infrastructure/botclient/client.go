package botclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client delivers ticket events to the bot process over its internal
// webhook. It implements the application layer's BotNotifier port.
type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type staffReplyPayload struct {
	TicketID uint   `json:"ticket_id"`
	Username string `json:"username"`
	Message  string `json:"message"`
}

type transcriptPayload struct {
	TicketID      uint   `json:"ticket_id"`
	DiscordUserID string `json:"discord_user_id"`
	Transcript    string `json:"transcript"`
	ViewURL       string `json:"view_url"`
}

type deleteChannelPayload struct {
	TicketID uint `json:"ticket_id"`
}

func (c *Client) SendStaffReply(ctx context.Context, ticketID uint, staffUsername, message string) error {
	return c.post(ctx, "/staff-reply", staffReplyPayload{
		TicketID: ticketID,
		Username: staffUsername,
		Message:  message,
	})
}

func (c *Client) SendTranscript(ctx context.Context, ticketID uint, discordUserID, transcript, viewURL string) error {
	return c.post(ctx, "/ticket-transcript", transcriptPayload{
		TicketID:      ticketID,
		DiscordUserID: discordUserID,
		Transcript:    transcript,
		ViewURL:       viewURL,
	})
}

func (c *Client) DeleteTicketChannel(ctx context.Context, ticketID uint) error {
	return c.post(ctx, "/ticket-delete-channel", deleteChannelPayload{TicketID: ticketID})
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach bot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bot returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
