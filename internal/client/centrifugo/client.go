package centrifugo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/s21platform/board-service/internal/config"
	"github.com/s21platform/board-service/internal/model"
)

const publishMethod = "publish"

var ErrEmptySessionKey = errors.New("empty session key")

// APIError is the error object Centrifugo puts in a 200 response when it
// refuses a command.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("centrifugo error %d: %s", e.Code, e.Message)
}

type apiReply struct {
	Error *APIError `json:"error"`
}

// Client mirrors board events into Centrifugo. General events go to the
// channel every viewer subscribes to; targeted events go to the channel
// named after the session key, the one a viewer's subscribe token grants.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		endpoint: strings.TrimRight(cfg.Centrifuge.BaseURL, "/") + "/api",
		apiKey:   cfg.Centrifuge.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Centrifuge.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Broadcast(ctx context.Context, event model.Event) error {
	return c.publish(ctx, model.BroadcastChannel, event)
}

func (c *Client) Send(ctx context.Context, sessionKey string, event model.Event) error {
	if sessionKey == "" {
		return ErrEmptySessionKey
	}
	return c.publish(ctx, sessionKey, event)
}

func (c *Client) publish(ctx context.Context, channel string, event model.Event) error {
	body, err := json.Marshal(model.CentrifugoEvent{
		Method: publishMethod,
		Params: model.CentrifugoEventParams{
			Channel: channel,
			Data:    event,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "apikey "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("publish to %s: unexpected status code: %d", channel, resp.StatusCode)
	}

	var reply apiReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("failed to decode reply: %w", err)
	}
	if reply.Error != nil {
		return reply.Error
	}

	return nil
}
