package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"codegen/config"
)

// Role is the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Generator returns the model's free-text reply to a conversation.
type Generator interface {
	Generate(ctx context.Context, system string, messages []Message) (string, error)
}

// Conversation accumulates turns so later requests see earlier replies.
type Conversation struct {
	System   string
	Messages []Message
}

// Ask appends prompt as a user turn, sends the whole conversation and records the reply.
// A failed call leaves the conversation unchanged.
func (c *Conversation) Ask(ctx context.Context, g Generator, prompt string) (string, error) {
	msgs := append(append([]Message(nil), c.Messages...), Message{Role: RoleUser, Content: prompt})
	reply, err := g.Generate(ctx, c.System, msgs)
	if err != nil {
		return "", err
	}
	c.Messages = append(msgs, Message{Role: RoleAssistant, Content: reply})
	return reply, nil
}

// Settings are the provider-independent request parameters.
type Settings struct {
	Model       string
	Temperature float32
	MaxTokens   int
	MaxRetries  int
}

// NewGenerator builds the Generator for cfg.ModelProvider.
func NewGenerator(ctx context.Context, cfg config.Config, logger *zap.Logger) (Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := Settings{
		Model:       cfg.Model(),
		Temperature: cfg.Temperature,
		MaxTokens:   cfg.MaxTokens,
		MaxRetries:  cfg.MaxRetries,
	}
	logger.Debug("Creating model client",
		zap.String("provider", cfg.ModelProvider),
		zap.String("model", settings.Model))

	switch cfg.ModelProvider {
	case config.ProviderOpenAI:
		return NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIBaseURL, settings, logger), nil
	case config.ProviderAnthropic:
		return NewAnthropicGenerator(cfg.AnthropicKey, cfg.AnthropicBaseURL, settings, logger), nil
	case config.ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.GeminiKey, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.ModelProvider)
	}
}
