// Package azureai provides a minimal Azure OpenAI chat-completions client used
// for outreach email and meeting draft generation.
package azureai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"outreach_backend/platform/config"
)

// ErrEmptyCompletion is returned when the model produced no usable text.
var ErrEmptyCompletion = errors.New("azureai: empty completion")

// LeadProfile carries the lead attributes the prompts personalize on.
type LeadProfile struct {
	Name        string
	Company     string
	Email       string
	Position    string
	ChatSummary string
	PrivateLink string
}

// Client calls the Azure OpenAI chat-completions API.
type Client struct {
	cfg    config.AzureOpenAIConfig
	client *http.Client
}

// New creates a client from the Azure OpenAI configuration.
func New(cfg config.AzureOpenAIConfig) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateReply produces a personalized outreach email body for the lead.
// The conversation link is appended so the template cannot drop it.
func (c *Client) GenerateReply(ctx context.Context, profile LeadProfile) (string, error) {
	prompt := outreachPrompt(profile)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return content + "\n\nClick here to chat with us: " + profile.PrivateLink, nil
}

// GenerateMeetingDraft produces a meeting proposal draft grounded in the
// lead's chat summary.
func (c *Client) GenerateMeetingDraft(ctx context.Context, profile LeadProfile) (string, error) {
	return c.complete(ctx, meetingPrompt(profile))
}

func (c *Client) complete(ctx context.Context, systemPrompt string) (string, error) {
	url := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		strings.TrimRight(c.cfg.GetAzureEndpoint(), "/"),
		c.cfg.GetAzureDeployment(),
		c.cfg.GetAzureAPIVersion(),
	)

	payload, err := json.Marshal(chatRequest{
		Messages:    []chatMessage{{Role: "system", Content: systemPrompt}},
		Temperature: 0.1,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.GetAzureAPIKey())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azureai: status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("azureai: %s", parsed.Error.Message)
	}

	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	return content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
