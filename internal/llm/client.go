// Package llm talks to an OpenAI-compatible chat completion API (xAI Grok by default).
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL = "https://api.x.ai/v1"
	DefaultModel   = "grok-4"
	DefaultSystem  = "You are Grok, a highly intelligent, helpful AI assistant."
)

var (
	// ErrNotConfigured is returned by every call when no API key was given.
	ErrNotConfigured = errors.New("llm: api key not configured")
	ErrEmptyResponse = errors.New("llm: empty completion")
)

// Role is the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

// Config contains client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client sends completions to the configured endpoint.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     hclog.Logger
}

// New creates a client. A client without an API key is valid but every call fails with ErrNotConfigured.
func New(cfg Config, logger hclog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	c := &Client{model: cfg.Model, timeout: cfg.Timeout, log: logger}
	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.BaseURL
		c.client = openai.NewClientWithConfig(clientConfig)
	}
	return c
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.client != nil }

// Generate answers a single prompt. An empty system message uses DefaultSystem.
func (c *Client) Generate(ctx context.Context, system, prompt string) (string, error) {
	return c.Chat(ctx, system, []Message{{Role: RoleUser, Content: prompt}})
}

// Chat sends the whole conversation and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, system string, history []Message) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}
	if strings.TrimSpace(system) == "" {
		system = DefaultSystem
	}
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	c.log.Debug("completion", "model", c.model, "messages", len(msgs),
		"tokens", resp.Usage.TotalTokens, "duration", time.Since(start))
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
