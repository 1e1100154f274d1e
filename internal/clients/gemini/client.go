// Package gemini provides a client for the Google Gemini API, used to
// summarize news headlines into a short digest.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hyeonlee/tansu/internal/common"
	"github.com/hyeonlee/tansu/internal/interfaces"
)

const DefaultModel = "gemini-2.0-flash"

// Client implements the Summarizer interface over the Gemini API.
type Client struct {
	client *genai.Client
	model  string
	logger *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client: genaiClient,
		model:  DefaultModel,
		logger: common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Summarize condenses the given headlines into a two-sentence market note.
func (c *Client) Summarize(ctx context.Context, headlines []string) (string, error) {
	c.logger.Debug().Str("model", c.model).Int("headlines", len(headlines)).Msg("Summarizing news")

	var sb strings.Builder
	sb.WriteString("Summarize the following Korean economy headlines in at most two sentences, ")
	sb.WriteString("focusing on what matters to a retail equity investor:\n")
	for _, h := range headlines {
		sb.WriteString("- ")
		sb.WriteString(h)
		sb.WriteString("\n")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(sb.String()), nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}

	text, err := extractTextFromResponse(result)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements Summarizer
var _ interfaces.Summarizer = (*Client)(nil)
