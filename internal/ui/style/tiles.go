package style

import "github.com/charmbracelet/lipgloss"

// TileKind identifies one of the summary statistic tiles.
type TileKind int

const (
	TileTotal TileKind = iota
	TileInProgress
	TileCompleted
	TileOverall
)

// TileSpec is the label, marker and color of a statistic tile.
type TileSpec struct {
	Label  string
	Marker string
	Color  lipgloss.Color
}

// TileOrder is the left-to-right order of the summary tiles.
var TileOrder = []TileKind{TileTotal, TileInProgress, TileCompleted, TileOverall}

// TileStyles maps each tile kind to its presentation.
var TileStyles = map[TileKind]TileSpec{
	TileTotal:      {Label: "Total Courses", Marker: "📚", Color: lipgloss.Color("#61AFEF")},
	TileInProgress: {Label: "In Progress", Marker: "📈", Color: lipgloss.Color("#D19A66")},
	TileCompleted:  {Label: "Completed", Marker: "✅", Color: lipgloss.Color("#98C379")},
	TileOverall:    {Label: "Overall Progress", Marker: "🏆", Color: lipgloss.Color("#C678DD")},
}
