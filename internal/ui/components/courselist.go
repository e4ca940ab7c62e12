package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/style"
	"github.com/sadopc/coursetrack/internal/util"
)

// EmptyMessage is shown when the filtered course list is empty.
const EmptyMessage = "No courses found. Start learning today!"

// CourseList renders the scrollable list of course cards.
type CourseList struct {
	Theme   style.Theme
	Layout  style.Layout
	Courses []model.Course
	Cursor  int
	Offset  int
}

// Render renders the visible cards, padded to the content height.
func (cl *CourseList) Render() string {
	width := cl.Layout.ContentWidth()
	height := cl.Layout.ContentHeight()

	if len(cl.Courses) == 0 {
		return RenderEmptyState(cl.Theme, width, height)
	}

	start := cl.Offset
	end := start + cl.Layout.VisibleCards()
	if end > len(cl.Courses) {
		end = len(cl.Courses)
	}

	var lines []string
	for i := start; i < end; i++ {
		card := RenderCourseCard(cl.Theme, cl.Layout, cl.Courses[i], i == cl.Cursor)
		lines = append(lines, strings.Split(card, "\n")...)
	}

	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// EnsureVisible adjusts offset to keep the cursor's card on screen.
func (cl *CourseList) EnsureVisible() {
	visible := cl.Layout.VisibleCards()
	if cl.Cursor < cl.Offset {
		cl.Offset = cl.Cursor
	}
	if cl.Cursor >= cl.Offset+visible {
		cl.Offset = cl.Cursor - visible + 1
	}
	if cl.Offset < 0 {
		cl.Offset = 0
	}
}

// CardAt returns the index of the card drawn at screen row y, or -1.
func (cl *CourseList) CardAt(y int) int {
	row := y - cl.Layout.ListTop()
	if row < 0 || row >= cl.Layout.ContentHeight() {
		return -1
	}
	idx := cl.Offset + row/style.CardHeight
	if row/style.CardHeight >= cl.Layout.VisibleCards() || idx >= len(cl.Courses) {
		return -1
	}
	return idx
}

// RenderEmptyState renders the placeholder shown when no course matches.
func RenderEmptyState(theme style.Theme, width, height int) string {
	icon := lipgloss.NewStyle().Foreground(theme.TextMuted).Render("📖")
	msg := util.TruncateString(EmptyMessage, max(width-2, 0))
	box := theme.EmptyState.Width(width).Render(icon + "\n" + msg)
	return lipgloss.PlaceVertical(height, lipgloss.Top, box)
}

// RenderCourseCard renders a single bordered course card:
//
//	╭──────────────────────────────────────────╮
//	│ 💻 Go Fundamentals                    🏆 │
//	│  dev   ⏱ 45 minutes remaining            │
//	│ 10 of 10 lessons                         │
//	│ ━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━  100% │
//	╰──────────────────────────────────────────╯
func RenderCourseCard(theme style.Theme, layout style.Layout, c model.Course, selected bool) string {
	inner := layout.CardInnerWidth()
	pct := c.Percent()
	tier := model.TierFor(pct)

	award := ""
	if tier == model.TierComplete {
		award = " " + lipgloss.NewStyle().Foreground(theme.TierComplete).Render("🏆")
	}
	icon := util.CategoryIcon(c.Category) + " "
	titleW := inner - lipgloss.Width(icon) - lipgloss.Width(award)
	title := theme.CardTitle.Render(util.TruncateString(c.Title, max(titleW, 0)))
	titleLine := spread(icon+title, award, inner)

	meta := theme.CategoryBadge.Render(util.TruncateString(c.Category, max(inner-2, 0)))
	if c.EstimatedTime != nil {
		meta += lipgloss.NewStyle().Foreground(theme.TextMuted).Render("  ⏱ " + util.FormatMinutes(*c.EstimatedTime))
	}
	meta = util.TruncateString(meta, inner)

	lessons := lipgloss.NewStyle().Foreground(theme.TextSecondary).
		Render(util.TruncateString(util.FormatLessons(c.CompletedLessons, c.TotalLessons), inner))

	barW := layout.BarWidth()
	bar := progress.New(
		progress.WithSolidFill(string(theme.TierColor(tier))),
		progress.WithoutPercentage(),
		progress.WithWidth(barW),
	)
	pctStyled := theme.PercentText.Foreground(theme.TierColor(tier)).Render(fmt.Sprintf("%d%%", pct))
	barLine := spread(bar.ViewAs(clampRatio(c.Ratio())), pctStyled, inner)

	cardStyle := theme.CardStyle
	if selected {
		cardStyle = theme.CardSelected
	}
	body := strings.Join([]string{titleLine, meta, lessons, barLine}, "\n")
	return cardStyle.
		Width(layout.ContentWidth() - 2).
		MaxHeight(style.CardHeight).
		Render(body)
}

// spread places left and right at opposite ends of a width-wide line.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func clampRatio(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
