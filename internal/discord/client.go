package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultAPIURL = "https://discord.com/api/v10"

type Client struct {
	baseURL  string
	appID    string
	botToken string
	http     *http.Client
}

func NewClient(baseURL, appID, botToken string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	return &Client{
		baseURL:  baseURL,
		appID:    appID,
		botToken: botToken,
		http:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) AppID() string { return c.appID }

// RegisterCommands overwrites the application's global commands.
// Reference: https://discord.com/developers/docs/interactions/application-commands#bulk-overwrite-global-application-commands
func (c *Client) RegisterCommands(ctx context.Context, cmds []ApplicationCommand) error {
	payload, err := json.Marshal(cmds)
	if err != nil {
		return fmt.Errorf("marshaling commands: %w", err)
	}

	url := fmt.Sprintf("%s/applications/%s/commands", c.baseURL, c.appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bot "+c.botToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("discord API status %d: %s", resp.StatusCode, respBody)
	}
	return nil
}
