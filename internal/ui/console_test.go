package ui

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"codegen/internal/structure"
)

func TestConsole_PlainOutputWhenNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Step("Generating functional requirements...")
	c.Success("Functional Requirements Generated")
	c.Markdown("# Title\n\nbody\n")
	c.Error(errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "→ Generating functional requirements...\n")
	assert.Contains(t, out, "✓ Functional Requirements Generated\n")
	assert.Contains(t, out, "# Title\n\nbody\n")
	assert.Contains(t, out, "✗ Error: boom")
}

func TestConsole_ReportsApplicatorEvents(t *testing.T) {
	var buf bytes.Buffer
	var r structure.Reporter = NewConsole(&buf)

	r.Report(structure.Event{Kind: structure.EventCommandStarted, Target: "npm init -y"})
	r.Report(structure.Event{Kind: structure.EventCommandFinished, Target: "npm init -y"})
	r.Report(structure.Event{Kind: structure.EventFolderCreated, Target: "/p/src"})
	r.Report(structure.Event{Kind: structure.EventFileWritten, Target: "/p/src/App.tsx"})

	assert.Equal(t, "Running command: npm init -y\n"+
		"Command completed successfully\n"+
		"Created folder: /p/src\n"+
		"Created file: /p/src/App.tsx (TSX)\n", buf.String())
}

func TestRenderMarkdown_FallsBackOnNothingToRender(t *testing.T) {
	out := RenderMarkdown("plain words", 40)
	assert.Contains(t, out, "plain words")
}
