package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
)

// AllCategories is the filter value that keeps every course.
const AllCategories = "all"

// SortField defines how the course list is ordered.
type SortField int

const (
	SortByProgress SortField = iota
	SortByRecent
	SortByTitle
)

var sortFieldNames = []string{"progress", "recent", "title"}

func (f SortField) String() string {
	if f < 0 || int(f) >= len(sortFieldNames) {
		return "unknown"
	}
	return sortFieldNames[f]
}

// ParseSortField parses a sort criterion name.
func ParseSortField(s string) (SortField, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range sortFieldNames {
		if n == name {
			return SortField(i), nil
		}
	}
	return SortByProgress, fmt.Errorf("unknown sort %q (want progress, recent or title)", s)
}

// ViewState holds the user-controlled display parameters.
// It never affects the underlying course data.
type ViewState struct {
	SortBy         SortField
	FilterCategory string
}

// DefaultViewState returns progress-sorted, unfiltered view state.
func DefaultViewState() ViewState {
	return ViewState{
		SortBy:         SortByProgress,
		FilterCategory: AllCategories,
	}
}

// SetSort changes the sort criterion.
func (v *ViewState) SetSort(f SortField) {
	v.SortBy = f
}

// SetFilter changes the category filter. An empty category means all.
func (v *ViewState) SetFilter(category string) {
	if category == "" {
		category = AllCategories
	}
	v.FilterCategory = category
}

// CycleSort advances to the next sort criterion.
func (v *ViewState) CycleSort() {
	v.SortBy = SortField((int(v.SortBy) + 1) % len(sortFieldNames))
}

// CycleFilter moves the category filter by delta through the given choices,
// wrapping at both ends. choices is expected to come from Categories.
func (v *ViewState) CycleFilter(choices []string, delta int) {
	if len(choices) == 0 {
		v.FilterCategory = AllCategories
		return
	}
	idx := 0
	for i, c := range choices {
		if c == v.FilterCategory {
			idx = i
			break
		}
	}
	n := len(choices)
	idx = ((idx+delta)%n + n) % n
	v.FilterCategory = choices[idx]
}

// Reconcile resets the filter to all if its category no longer exists.
func (v *ViewState) Reconcile(choices []string) {
	for _, c := range choices {
		if c == v.FilterCategory {
			return
		}
	}
	v.FilterCategory = AllCategories
}

// Categories returns AllCategories followed by each distinct category in
// first-appearance order.
func Categories(courses []Course) []string {
	seen := make(map[string]bool, len(courses))
	out := []string{AllCategories}
	for _, c := range courses {
		if seen[c.Category] {
			continue
		}
		seen[c.Category] = true
		out = append(out, c.Category)
	}
	return out
}

// Select filters courses by the view's category and returns them sorted by
// the view's criterion. The input slice is never modified.
func Select(courses []Course, view ViewState) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if view.FilterCategory == AllCategories || view.FilterCategory == "" || c.Category == view.FilterCategory {
			out = append(out, c)
		}
	}
	SortCourses(out, view.SortBy)
	return out
}

// SortCourses sorts a slice of courses in place. The sort is stable, so
// courses that compare equal keep their relative order.
func SortCourses(courses []Course, field SortField) {
	switch field {
	case SortByProgress:
		sort.SliceStable(courses, func(i, j int) bool {
			return courses[i].Ratio() > courses[j].Ratio()
		})
	case SortByRecent:
		sort.SliceStable(courses, func(i, j int) bool {
			a, b := courses[i].LastAccessed, courses[j].LastAccessed
			if a == nil || b == nil {
				// Timestamped courses first; untimed ones keep input order.
				return a != nil && b == nil
			}
			return a.After(*b)
		})
	case SortByTitle:
		sort.SliceStable(courses, func(i, j int) bool {
			return natural.Less(strings.ToLower(courses[i].Title), strings.ToLower(courses[j].Title))
		})
	}
}
