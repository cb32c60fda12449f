package report

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"postmortem/internal/prompt"
)

// OpenAIConfig contains configuration for the OpenAI-backed generator.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
	// BaseURL overrides the API endpoint. Empty means the SDK default.
	BaseURL string
}

// OpenAIGenerator calls OpenAI's Chat Completions API to produce reports.
type OpenAIGenerator struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAIGenerator builds a new generator instance.
func NewOpenAIGenerator(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("model is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIGenerator{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// Generate sends a single blocking completion request and returns the
// generated Markdown verbatim. No retries, no streaming.
func (g *OpenAIGenerator) Generate(
	ctx context.Context,
	transcript string,
) (string, error) {
	if strings.TrimSpace(transcript) == "" {
		return "", errors.New("transcript is empty")
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt.Build(transcript)),
		},
		Temperature: openai.Float(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("failed to do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion choices are missing")
	}

	markdown := resp.Choices[0].Message.Content
	if strings.TrimSpace(markdown) == "" {
		return "", errors.New("chat completion choice message content is missing")
	}

	return markdown, nil
}
