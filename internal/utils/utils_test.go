package utils

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestShouldRetry(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"canceled", fmt.Errorf("call: %w", context.Canceled), false},
		{"openai rate limit", &openai.APIError{HTTPStatusCode: 429}, true},
		{"openai server error", fmt.Errorf("wrap: %w", &openai.APIError{HTTPStatusCode: 503}), true},
		{"openai bad request", &openai.APIError{HTTPStatusCode: 400, Message: "bad request"}, false},
		{"openai request error", &openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}, true},
		{"message timeout", errors.New("dial tcp: i/o timeout"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"gemini quota", errors.New("Error 429, Status: RESOURCE_EXHAUSTED"), true},
		{"auth", errors.New("invalid api key"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ShouldRetry(tc.err))
		})
	}
}

func TestDetermineFileType(t *testing.T) {
	cases := map[string]string{
		"src/App.tsx":           "TSX",
		"backend/db/schema.SQL": "SQL",
		"server/index.js":       "JavaScript",
		"Dockerfile":            "Dockerfile",
		"backend/knexfile.js":   "JavaScript",
		"knexfile":              "Config",
		"vite.config.ts":        "TypeScript",
		"README":                "Unknown",
		"assets/logo.PNG":       "Image",
		".env":                  "Env",
		"Makefile":              "Makefile",
	}
	for name, want := range cases {
		assert.Equal(t, want, DetermineFileType(name), name)
	}
}
