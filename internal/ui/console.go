package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codegen/internal/structure"
	"codegen/internal/utils"
)

// Console prints user-facing progress. It also receives applicator events.
type Console struct {
	w     io.Writer
	s     styles
	width int
	tty   bool
}

// NewConsole writes to w, with colour and markdown rendering only on a terminal.
func NewConsole(w io.Writer) *Console {
	width, tty := terminalWidth(w)
	return &Console{
		w:     w,
		s:     newStyles(lipgloss.NewRenderer(w)),
		width: width,
		tty:   tty,
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// Header prints a bold title line.
func (c *Console) Header(title string) {
	c.printf("%s\n", c.s.header.Render(title))
}

// Step announces work that is about to start.
func (c *Console) Step(msg string) {
	c.printf("%s %s\n", c.s.info.Render(IconStep), msg)
}

// Success marks a finished step.
func (c *Console) Success(msg string) {
	c.printf("\n%s %s\n", c.s.pass.Render(IconPass), msg)
}

func (c *Console) Warn(msg string) {
	c.printf("%s %s\n", c.s.warn.Render(IconWarn), msg)
}

func (c *Console) Error(err error) {
	c.printf("\n%s %s %v\n", c.s.fail.Render(IconFail), c.s.fail.Render("Error:"), err)
}

// Markdown prints a generated document, rendered when attached to a terminal.
func (c *Console) Markdown(md string) {
	if c.tty {
		md = RenderMarkdown(md, c.width)
	}
	c.printf("%s\n", strings.TrimRight(md, "\n"))
}

// Report implements structure.Reporter.
func (c *Console) Report(e structure.Event) {
	switch e.Kind {
	case structure.EventCommandStarted:
		c.printf("%s %s\n", c.s.warn.Render("Running command:"), e.Target)
	case structure.EventCommandFinished:
		c.printf("%s\n", c.s.pass.Render("Command completed successfully"))
	case structure.EventFolderCreated:
		c.printf("%s %s\n", c.s.pass.Render("Created folder:"), e.Target)
	case structure.EventFileWritten:
		c.printf("%s %s (%s)\n", c.s.pass.Render("Created file:"), e.Target, utils.DetermineFileType(filepath.Base(e.Target)))
	}
}
