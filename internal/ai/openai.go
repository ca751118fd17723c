package ai

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type openAIGenerator struct {
	client   *openai.Client
	settings Settings
	logger   *zap.Logger
}

// NewOpenAIGenerator talks to the OpenAI chat completions API. baseURL is
// optional and points the client at a compatible server.
func NewOpenAIGenerator(apiKey, baseURL string, settings Settings, logger *zap.Logger) Generator {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}
	return &openAIGenerator{
		client:   openai.NewClientWithConfig(clientConfig),
		settings: settings,
		logger:   logger,
	}
}

func (g *openAIGenerator) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.settings.Model,
		Temperature: g.settings.Temperature,
		MaxTokens:   g.settings.MaxTokens,
	}
	if system != "" {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	for _, m := range messages {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	return withRetry(ctx, g.logger, "openai", g.settings.MaxRetries, func() (string, error) {
		resp, err := g.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("openai chat completion failed: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			g.logger.Warn("OpenAI returned no content", zap.Any("usage", resp.Usage))
			return "", errors.New("openai returned empty response")
		}
		g.logger.Debug("OpenAI usage",
			zap.Int("prompt_tokens", resp.Usage.PromptTokens),
			zap.Int("completion_tokens", resp.Usage.CompletionTokens))
		return resp.Choices[0].Message.Content, nil
	})
}
