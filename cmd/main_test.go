package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codegen/config"
)

func TestApplyGenerateFlags(t *testing.T) {
	base := config.Config{ModelProvider: config.ProviderOpenAI, ProjectOutputDir: "generated_projects"}

	got := applyGenerateFlags(base, " Anthropic ", "/tmp/out")
	assert.Equal(t, config.ProviderAnthropic, got.ModelProvider)
	assert.Equal(t, "/tmp/out", got.ProjectOutputDir)

	got = applyGenerateFlags(base, "", "")
	assert.Equal(t, base, got)
}

func TestReadResponse(t *testing.T) {
	data, err := readResponse(strings.NewReader("from stdin"), "-")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	path := filepath.Join(t.TempDir(), "resp.md")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0o644))
	data, err = readResponse(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	_, err = readResponse(nil, filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestApplyCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	out := filepath.Join(t.TempDir(), "out")
	response := "Here you go:\n```json\n{\n  folders: [\"src\"],\n  files: {\n    \"src/index.js\": \"console.log(1)\"\n  }\n}\n```\n"

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetIn(strings.NewReader(response))
	rootCmd.SetArgs([]string{"apply", "-", "--dir", out})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetIn(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	content, err := os.ReadFile(filepath.Join(out, "src", "index.js"))
	require.NoError(t, err)
	assert.Equal(t, "console.log(1)", string(content))
	assert.Contains(t, stdout.String(), "Applied 0 commands, 1 folders, 1 files")
}

func TestApplyCommand_ReportsFailureOnConsole(t *testing.T) {
	t.Chdir(t.TempDir())

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetIn(strings.NewReader("I could not generate this."))
	rootCmd.SetArgs([]string{"apply", "-", "--dir", t.TempDir()})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetIn(nil); rootCmd.SetOut(nil) })

	err := rootCmd.Execute()
	var reported reportedError
	require.ErrorAs(t, err, &reported)
	assert.Contains(t, stdout.String(), "Error:")
	assert.Contains(t, stdout.String(), "Nothing was applied")
}

func TestGenerateCommand_DefaultModeWritesNothing(t *testing.T) {
	t.Chdir(t.TempDir())
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": "# Requirements"}}},
		})
	}))
	defer server.Close()

	t.Setenv("MODEL_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_BASE_URL", server.URL+"/v1")
	t.Setenv("MAX_RETRIES", "0")
	out := filepath.Join(t.TempDir(), "projects")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"generate", "a todo app", "--output-dir", out})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())

	// Functional and technical requirements only.
	assert.Equal(t, int32(2), calls.Load())
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, stdout.String(), "Technical Requirements Generated")
}
