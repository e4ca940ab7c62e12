package components

import (
	"strings"

	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/style"
)

// Dashboard is everything one frame of the dashboard is computed from.
type Dashboard struct {
	Theme    style.Theme
	Layout   style.Layout
	Courses  []model.Course // full input list
	View     model.ViewState
	Cursor   int
	Offset   int
	ErrorMsg string
}

// Selection returns the filtered, sorted courses for the current view.
func (d *Dashboard) Selection() []model.Course {
	return model.Select(d.Courses, d.View)
}

// Render draws header, tiles, filter bar, card list and status bar.
// It returns the list offset actually used so callers can keep scrolling state.
func (d *Dashboard) Render() (string, int) {
	width := d.Layout.ContentWidth()
	sum := model.Aggregate(d.Courses)
	selected := d.Selection()

	list := &CourseList{
		Theme:   d.Theme,
		Layout:  d.Layout,
		Courses: selected,
		Cursor:  d.Cursor,
		Offset:  d.Offset,
	}
	list.EnsureVisible()

	info := StatusInfo{
		Shown:    len(selected),
		Total:    len(d.Courses),
		Cursor:   d.Cursor,
		ErrorMsg: d.ErrorMsg,
	}
	if d.Cursor >= 0 && d.Cursor < len(selected) {
		info.Selected = &selected[d.Cursor]
	}

	parts := []string{
		RenderHeader(d.Theme, sum, width),
		RenderSubtitle(d.Theme, width),
		RenderStatTiles(d.Theme, d.Layout, sum),
		RenderFilterBar(d.Theme, model.Categories(d.Courses), d.View, width),
		list.Render(),
		RenderStatusBar(d.Theme, info, width),
	}
	return strings.Join(parts, "\n"), list.Offset
}
