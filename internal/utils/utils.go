package utils

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sashabaranov/go-openai"
)

// ShouldRetry reports whether a provider error is transient: rate limits,
// server errors, timeouts and dropped connections.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode >= 500 || openAIErr.HTTPStatusCode == 429
	}
	var openAIReqErr *openai.RequestError
	if errors.As(err, &openAIReqErr) {
		return openAIReqErr.HTTPStatusCode >= 500 || openAIReqErr.HTTPStatusCode == 429
	}
	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return anthropicErr.StatusCode >= 500 || anthropicErr.StatusCode == 429
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, transient := range []string{
		"rate limit",
		"resource_exhausted",
		"500 internal server error",
		"502 bad gateway",
		"503 service unavailable",
		"504 gateway timeout",
		"timeout",
		"connection reset by peer",
	} {
		if strings.Contains(errMsg, transient) {
			return true
		}
	}
	return false
}

// fileTypes maps a lower-case extension to the label shown in progress output.
var fileTypes = map[string]string{
	".html": "HTML", ".css": "CSS",
	".js": "JavaScript", ".mjs": "JavaScript", ".cjs": "JavaScript",
	".jsx": "JSX", ".ts": "TypeScript", ".tsx": "TSX",
	".json": "JSON", ".yaml": "YAML", ".yml": "YAML", ".toml": "TOML",
	".md": "Markdown", ".txt": "Text",
	".sh": "Shell", ".py": "Python", ".go": "Go", ".sql": "SQL",
	".env": "Env", ".gitignore": "GitIgnore",
	".svg": "SVG", ".png": "Image", ".jpg": "Image", ".jpeg": "Image", ".gif": "Image", ".webp": "Image",
}

// DetermineFileType gives a human label for a generated file, used in progress output.
// Extension-less build files are recognised by name.
func DetermineFileType(filename string) string {
	name := strings.ToLower(filepath.Base(filename))
	if label, ok := fileTypes[filepath.Ext(name)]; ok {
		return label
	}
	switch {
	case strings.Contains(name, "dockerfile"):
		return "Dockerfile"
	case name == "makefile":
		return "Makefile"
	case strings.HasPrefix(name, "knexfile"), strings.Contains(name, ".config."):
		return "Config"
	}
	return "Unknown"
}
