package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/style"
	"github.com/sadopc/coursetrack/internal/util"
)

const (
	headerTitle    = "My Learning Progress"
	headerSubtitle = "Track your courses and continue your learning journey"
)

// RenderHeader renders the top header bar with the overall progress gradient.
func RenderHeader(theme style.Theme, sum model.Summary, width int) string {
	if width < 10 {
		return ""
	}

	titleStyled := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary).Render(" coursetrack")
	nameStyled := lipgloss.NewStyle().Foreground(theme.TextPrimary).Render("  " + headerTitle)

	pct := fmt.Sprintf(" %3d%% ", sum.OverallProgress)
	pctStyled := lipgloss.NewStyle().Bold(true).Foreground(theme.GradientColor(float64(sum.OverallProgress) / 100)).Render(pct)

	titleW := lipgloss.Width(titleStyled)
	nameW := lipgloss.Width(nameStyled)
	pctW := lipgloss.Width(pctStyled)

	// The bar gets whatever space remains, up to 30 cells
	barW := width - titleW - nameW - pctW - 2
	if barW > 30 {
		barW = 30
	}
	bar := ""
	if barW >= 5 {
		bar = theme.BarGradient(barW, float64(sum.OverallProgress)/100)
	} else {
		barW = 0
		nameStyled = ""
		nameW = 0
	}

	gap := width - titleW - nameW - barW - pctW
	if gap < 1 {
		gap = 1
	}

	line := titleStyled + nameStyled + strings.Repeat(" ", gap) + bar + pctStyled
	return theme.HeaderStyle.Width(width).Render(line)
}

// RenderSubtitle renders the line under the header.
func RenderSubtitle(theme style.Theme, width int) string {
	if width < 4 {
		return ""
	}
	text := " " + util.TruncateString(headerSubtitle, width-2)
	return theme.SubtitleStyle.Width(width).Render(text)
}
