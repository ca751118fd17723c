// Package ui renders progress and results of the generator on the terminal.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	ColorWarn = lipgloss.AdaptiveColor{Light: "#f2ae49", Dark: "#ffb454"}
	ColorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	ColorInfo = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✗"
	IconStep = "→"
)

// styles are bound to a renderer so colour is only emitted when the
// destination supports it.
type styles struct {
	pass   lipgloss.Style
	warn   lipgloss.Style
	fail   lipgloss.Style
	info   lipgloss.Style
	header lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		pass:   r.NewStyle().Foreground(ColorPass),
		warn:   r.NewStyle().Foreground(ColorWarn),
		fail:   r.NewStyle().Foreground(ColorFail),
		info:   r.NewStyle().Foreground(ColorInfo),
		header: r.NewStyle().Bold(true).Foreground(ColorInfo),
	}
}
