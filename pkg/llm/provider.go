// Package llm wraps an OpenAI-compatible provider for health probing. The
// provider generates posts on the automation server side; this service only
// verifies it answers.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/krawin/postdeck/pkg/config"
)

// Provider probes an OpenAI-compatible endpoint
type Provider struct {
	client *openai.Client
	config config.LLMConfig
}

// NewProvider creates a new LLM provider
func NewProvider(cfg config.LLMConfig) *Provider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Provider{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Model returns the configured model name
func (p *Provider) Model() string {
	return p.config.Model
}

// Ping sends a minimal completion request and checks the model answers.
// Any non-empty response containing "pong" counts as healthy, smaller local
// models tend to decorate the reply.
func (p *Provider) Ping(ctx context.Context) error {
	req := openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Temperature: float32(p.config.Temperature),
		MaxTokens:   p.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Reply with exactly: pong",
			},
		},
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return fmt.Errorf("llm request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return fmt.Errorf("no response from llm")
	}

	content := strings.ToLower(resp.Choices[0].Message.Content)
	if !strings.Contains(content, "pong") {
		return fmt.Errorf("unexpected llm response %q", resp.Choices[0].Message.Content)
	}

	return nil
}
