package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/coursetrack/internal/ui/style"
)

// RenderHelp renders the help overlay.
func RenderHelp(theme style.Theme, width, height int) string {
	boxWidth := 60
	if boxWidth > width-4 {
		boxWidth = width - 4
	}

	title := theme.ModalTitle.Render("  coursetrack - Keyboard Shortcuts")

	sections := []struct {
		name  string
		binds []struct{ key, desc string }
	}{
		{
			name: "Navigation",
			binds: []struct{ key, desc string }{
				{"j/k", "Move down/up"},
				{"g/G", "First / last course"},
				{"Enter", "Open course"},
				{"Click", "Open course"},
			},
		},
		{
			name: "Filter",
			binds: []struct{ key, desc string }{
				{"c / tab", "Next category"},
				{"C", "Previous category"},
				{"0", "All categories"},
			},
		},
		{
			name: "Sorting",
			binds: []struct{ key, desc string }{
				{"p", "Sort by progress"},
				{"t", "Sort by most recent"},
				{"n", "Sort by title"},
				{"s", "Cycle sort"},
			},
		},
		{
			name: "General",
			binds: []struct{ key, desc string }{
				{"r", "Reload course file"},
				{"E", "Export snapshot"},
				{"?", "Toggle help"},
				{"q", "Quit"},
			},
		},
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	for _, sec := range sections {
		secTitle := lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent).
			Render("  " + sec.name)
		lines = append(lines, secTitle)

		for _, b := range sec.binds {
			key := lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Width(14).
				Render("    " + b.key)
			desc := lipgloss.NewStyle().
				Foreground(theme.TextSecondary).
				Render(b.desc)
			lines = append(lines, fmt.Sprintf("%s %s", key, desc))
		}
		lines = append(lines, "")
	}

	close := lipgloss.NewStyle().
		Foreground(theme.TextMuted).
		Render("  Press ? or Esc to close")
	lines = append(lines, close)

	content := strings.Join(lines, "\n")

	box := theme.ModalStyle.
		Width(boxWidth).
		Render(content)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
