package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	letterStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	attachedStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	detailStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			PaddingLeft(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor).
			PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)
)

// pad right-pads s to width with spaces (based on visual width, not byte count).
func pad(s string, width int) string {
	visual := lipgloss.Width(s)
	if visual >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visual)
}

// shortenPath abbreviates a path for display (replaces $HOME with ~, truncates).
func shortenPath(path string, maxLen int) string {
	if path == "" {
		return ""
	}
	home, _ := os.UserHomeDir()
	if home != "" && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	if len(path) <= maxLen {
		return path
	}
	return "…" + path[len(path)-(maxLen-1):]
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder

	title := "muxpick · " + m.req.Authority
	if m.req.Host != "" {
		title += " @ " + m.req.Host
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(m.renderSessions())
	b.WriteString("\n")

	b.WriteString(" ")
	b.WriteString(inputLabelStyle.Render("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSessions() string {
	if len(m.req.Sessions) == 0 {
		return emptyStyle.Render("no sessions yet") + "\n"
	}

	keys := m.req.Letters.Keys()
	nameWidth := 0
	for _, s := range m.req.Sessions {
		if w := lipgloss.Width(s.Name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for i, s := range m.req.Sessions {
		if i >= len(keys) {
			break
		}
		label := pad(keys[i], 2)
		name := pad(s.Name, nameWidth)
		if s.Attached {
			name = attachedStyle.Render(name)
		}

		details := s.Describe(m.now)
		if p := shortenPath(s.Path, 40); p != "" {
			if details != "" {
				details += " · "
			}
			details += p
		}

		b.WriteString("  ")
		b.WriteString(letterStyle.Render(label))
		b.WriteString("  ")
		b.WriteString(name)
		if details != "" {
			b.WriteString("  ")
			b.WriteString(detailStyle.Render(details))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpText() string {
	if len(m.req.Sessions) == 0 {
		return "name: create · enter: new session · esc: cancel"
	}
	return "letter: attach · name: create · enter: new session · reset: kill all · esc: cancel"
}
