package ai

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type geminiGenerator struct {
	client   *genai.Client
	settings Settings
	logger   *zap.Logger
}

// NewGeminiGenerator talks to the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string, settings Settings, logger *zap.Logger) (Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &geminiGenerator{client: client, settings: settings, logger: logger}, nil
}

func (g *geminiGenerator) Generate(ctx context.Context, system string, messages []Message) (string, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.settings.Temperature),
		MaxOutputTokens: int32(g.settings.MaxTokens),
	}
	if system != "" {
		cfg.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}

	return withRetry(ctx, g.logger, "gemini", g.settings.MaxRetries, func() (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.settings.Model, contents, cfg)
		if err != nil {
			return "", fmt.Errorf("gemini generate content failed: %w", err)
		}
		text := resp.Text()
		if text == "" {
			return "", errors.New("gemini returned empty response")
		}
		return text, nil
	})
}
