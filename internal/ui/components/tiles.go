package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/style"
	"github.com/sadopc/coursetrack/internal/util"
)

// TileValue returns the displayed value for a tile kind.
func TileValue(kind style.TileKind, sum model.Summary) string {
	switch kind {
	case style.TileTotal:
		return util.FormatCount(int64(sum.TotalCourses))
	case style.TileInProgress:
		return util.FormatCount(int64(sum.InProgressCourses))
	case style.TileCompleted:
		return util.FormatCount(int64(sum.CompletedCourses))
	case style.TileOverall:
		return fmt.Sprintf("%d%%", sum.OverallProgress)
	}
	return ""
}

// RenderStatTiles renders the four summary tiles side by side.
func RenderStatTiles(theme style.Theme, layout style.Layout, sum model.Summary) string {
	tileW := layout.TileWidth()
	inner := tileW - 4 // border + padding

	tiles := make([]string, 0, len(style.TileOrder))
	for _, kind := range style.TileOrder {
		ts := style.TileStyles[kind]

		label := util.TruncateString(ts.Label, max(inner-3, 0))
		labelLine := lipgloss.NewStyle().Foreground(ts.Color).Render(ts.Marker) + " " + theme.TileLabel.Render(label)
		valueLine := theme.TileValue.Render(util.TruncateString(TileValue(kind, sum), inner))

		tile := theme.TileStyle.
			BorderForeground(ts.Color).
			Width(tileW - 2).
			MaxHeight(style.TileHeight).
			Render(labelLine + "\n" + valueLine)
		tiles = append(tiles, tile)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(tiles, " ")...)
	return lipgloss.PlaceHorizontal(layout.ContentWidth(), lipgloss.Left, row)
}

func interleave(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
