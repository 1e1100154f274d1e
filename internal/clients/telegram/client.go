// Package telegram provides the chat transport: outbound messages and the
// inbound getUpdates long poll.
package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
)

const (
	DefaultBaseURL     = "https://api.telegram.org"
	DefaultPollTimeout = 25 * time.Second
)

// Client talks to the Telegram Bot API. It tracks the update offset so each
// Poll call only yields messages not seen before.
type Client struct {
	http        *resty.Client
	token       string
	chatID      string
	pollTimeout time.Duration
	logger      *common.Logger
	offset      int64
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithPollTimeout sets the long-poll duration
func WithPollTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.pollTimeout = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Telegram bot client bound to one chat.
func NewClient(token, chatID string, opts ...ClientOption) *Client {
	c := &Client{
		http:        resty.New().SetBaseURL(DefaultBaseURL),
		token:       token,
		chatID:      chatID,
		pollTimeout: DefaultPollTimeout,
		logger:      common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Long poll needs headroom beyond the poll timeout itself.
	c.http.SetTimeout(c.pollTimeout + 10*time.Second)

	return c
}

type apiEnvelope struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      []updatePayload `json:"result"`
}

type updatePayload struct {
	UpdateID int64 `json:"update_id"`
	Message  *struct {
		Text string `json:"text"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message"`
}

// Send delivers text to the configured chat.
func (c *Client) Send(ctx context.Context, text string) error {
	var out struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"chat_id": c.chatID,
			"text":    text,
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/bot%s/sendMessage", c.token))
	if err != nil {
		return fmt.Errorf("sendMessage failed: %w", err)
	}
	if resp.IsError() || !out.OK {
		return fmt.Errorf("sendMessage rejected (status %d): %s", resp.StatusCode(), out.Description)
	}
	return nil
}

// Poll blocks up to the poll timeout and returns new message texts from the
// configured chat. Messages from other chats are dropped.
func (c *Client) Poll(ctx context.Context) ([]string, error) {
	var out apiEnvelope

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"offset":  strconv.FormatInt(c.offset, 10),
			"timeout": strconv.Itoa(int(c.pollTimeout.Seconds())),
		}).
		SetResult(&out).
		Get(fmt.Sprintf("/bot%s/getUpdates", c.token))
	if err != nil {
		return nil, fmt.Errorf("getUpdates failed: %w", err)
	}
	if resp.IsError() || !out.OK {
		return nil, fmt.Errorf("getUpdates rejected (status %d): %s", resp.StatusCode(), out.Description)
	}

	var texts []string
	for _, u := range out.Result {
		if u.UpdateID >= c.offset {
			c.offset = u.UpdateID + 1
		}
		if u.Message == nil || u.Message.Text == "" {
			continue
		}
		if strconv.FormatInt(u.Message.Chat.ID, 10) != c.chatID {
			c.logger.Debug().Int64("chat", u.Message.Chat.ID).Msg("Dropping message from foreign chat")
			continue
		}
		texts = append(texts, u.Message.Text)
	}

	return texts, nil
}

// Ensure Client implements the transport interfaces
var (
	_ interfaces.Notifier     = (*Client)(nil)
	_ interfaces.UpdateSource = (*Client)(nil)
)
