package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/style"
)

// StatusInfo holds the current state for the status bar.
type StatusInfo struct {
	Shown    int
	Total    int
	Cursor   int
	Selected *model.Course
	ErrorMsg string
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(theme style.Theme, info StatusInfo, width int) string {
	if info.ErrorMsg != "" {
		errLine := " " + lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(info.ErrorMsg)
		return theme.StatusBarStyle.Width(width).Render(errLine)
	}

	var parts []string
	if info.Shown == info.Total {
		parts = append(parts, fmt.Sprintf("%d courses", info.Total))
	} else {
		parts = append(parts, fmt.Sprintf("%d of %d courses", info.Shown, info.Total))
	}
	if info.Shown > 0 && info.Cursor >= 0 {
		parts = append(parts, fmt.Sprintf("%d/%d", info.Cursor+1, info.Shown))
	}
	if info.Selected != nil {
		tier := model.TierFor(info.Selected.Percent())
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TierColor(tier)).Render(model.TierName(tier)))
	}

	left := " " + strings.Join(parts, " | ")

	hints := []struct{ key, desc string }{
		{"?", "help"},
		{"enter", "open"},
		{"q", "quit"},
	}

	var rightParts []string
	for _, h := range hints {
		k := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(h.key)
		d := lipgloss.NewStyle().Foreground(theme.TextMuted).Render(" " + h.desc)
		rightParts = append(rightParts, k+d)
	}
	right := strings.Join(rightParts, "  ") + " "

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + right
	return theme.StatusBarStyle.Width(width).Render(line)
}

// CategoryLabel returns the filter-bar label for a category choice.
func CategoryLabel(category string) string {
	if category == model.AllCategories {
		return "All Categories"
	}
	if category == "" {
		return "(none)"
	}
	return category
}

// RenderFilterBar renders the category tabs and the active sort criterion.
// When the tabs overflow, leading tabs are dropped until the active one fits.
func RenderFilterBar(theme style.Theme, categories []string, view model.ViewState, width int) string {
	sortLabel := lipgloss.NewStyle().
		Foreground(theme.TextMuted).
		Render("Sort: " + sortName(view.SortBy) + " ")
	rightW := lipgloss.Width(sortLabel)

	var tabs []string
	active := 0
	for i, cat := range categories {
		label := " " + CategoryLabel(cat) + " "
		if cat == view.FilterCategory {
			active = i
			tabs = append(tabs, theme.TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactiveStyle.Render(label))
		}
	}

	first := 0
	left := " " + strings.Join(tabs, " ")
	for first < active && lipgloss.Width(left)+rightW >= width {
		first++
		left = " « " + strings.Join(tabs[first:], " ")
	}

	leftW := lipgloss.Width(left)
	gap := width - leftW - rightW
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + sortLabel
	return lipgloss.NewStyle().
		Foreground(theme.TextSecondary).
		Background(theme.BgLight).
		Width(width).
		MaxHeight(1).
		Render(line)
}

func sortName(f model.SortField) string {
	switch f {
	case model.SortByRecent:
		return "Recent"
	case model.SortByTitle:
		return "Title"
	default:
		return "Progress"
	}
}
