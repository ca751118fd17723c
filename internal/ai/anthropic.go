package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"go.uber.org/zap"
)

type anthropicGenerator struct {
	client   anthropic.Client
	settings Settings
	logger   *zap.Logger
}

// NewAnthropicGenerator talks to the Anthropic messages API. The SDK's own
// retries are disabled; withRetry owns the retry policy.
func NewAnthropicGenerator(apiKey, baseURL string, settings Settings, logger *zap.Logger) Generator {
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicGenerator{
		client:   anthropic.NewClient(opts...),
		settings: settings,
		logger:   logger,
	}
}

func (g *anthropicGenerator) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(g.settings.Model),
		MaxTokens:   int64(g.settings.MaxTokens),
		Temperature: anthropic.Float(float64(g.settings.Temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	for _, m := range messages {
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == RoleAssistant {
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(block))
		} else {
			params.Messages = append(params.Messages, anthropic.NewUserMessage(block))
		}
	}

	return withRetry(ctx, g.logger, "anthropic", g.settings.MaxRetries, func() (string, error) {
		message, err := g.client.Messages.New(ctx, params)
		if err != nil {
			return "", fmt.Errorf("anthropic messages call failed: %w", err)
		}
		var sb strings.Builder
		for _, block := range message.Content {
			if block.Type == "text" {
				sb.WriteString(block.Text)
			}
		}
		if sb.Len() == 0 {
			return "", errors.New("anthropic returned empty response")
		}
		g.logger.Debug("Anthropic usage",
			zap.Int64("input_tokens", message.Usage.InputTokens),
			zap.Int64("output_tokens", message.Usage.OutputTokens))
		return sb.String(), nil
	})
}
