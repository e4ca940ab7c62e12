package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ops"
	"github.com/sadopc/coursetrack/internal/ui/components"
	"github.com/sadopc/coursetrack/internal/ui/style"
)

// AppState represents the application state.
type AppState int

const (
	StateLoading AppState = iota
	StateBrowsing
	StateHelp
	StateExporting
)

// LoadDoneMsg is sent when the course file has been read.
type LoadDoneMsg struct {
	Courses []model.Course
	Err     error
}

// ExportDoneMsg is sent when export completes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// App is the root Bubble Tea model.
type App struct {
	ImportPath string
	ExportPath string
	Version    string

	// OnCourseClick is called with the course ID when a card is activated.
	// It may be nil.
	OnCourseClick func(courseID string)
	// QuitOnSelect makes activating a card end the program.
	QuitOnSelect bool

	state  AppState
	width  int
	height int

	courses  []model.Course
	view     model.ViewState
	selected []model.Course // view selection, recomputed by refresh

	cursor int
	offset int

	loaded bool

	theme  style.Theme
	keys   KeyMap
	layout style.Layout

	statusMsg string
	fatalErr  error
}

// NewApp creates an App that loads courses from importPath.
func NewApp(importPath string, view model.ViewState) *App {
	return &App{
		ImportPath: importPath,
		state:      StateLoading,
		view:       view,
		theme:      style.DefaultTheme(),
		keys:       DefaultKeyMap(),
	}
}

// NewAppWithCourses creates an App over an already-loaded course list.
func NewAppWithCourses(courses []model.Course, view model.ViewState) *App {
	a := NewApp("", view)
	a.setCourses(courses)
	return a
}

func (a *App) Init() tea.Cmd {
	if a.loaded || a.ImportPath == "" {
		return nil
	}
	return a.loadCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = style.NewLayout(msg.Width, msg.Height)
		return a, nil

	case LoadDoneMsg:
		if msg.Err != nil {
			if !a.loaded {
				a.fatalErr = msg.Err
				return a, tea.Quit
			}
			a.state = StateBrowsing
			a.statusMsg = fmt.Sprintf("Reload failed: %v", msg.Err)
			return a, nil
		}
		a.fatalErr = nil
		reloaded := a.loaded
		a.setCourses(msg.Courses)
		if reloaded {
			a.statusMsg = fmt.Sprintf("Reloaded %d course(s)", len(msg.Courses))
		}
		log.Printf("loaded %d courses from %s", len(msg.Courses), a.ImportPath)
		return a, tea.ClearScreen

	case ExportDoneMsg:
		a.state = StateBrowsing
		if msg.Err != nil {
			a.statusMsg = fmt.Sprintf("Export failed: %v", msg.Err)
		} else {
			a.statusMsg = fmt.Sprintf("Exported to %s", msg.Path)
		}
		log.Printf("export to %s: err=%v", msg.Path, msg.Err)
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}

	switch a.state {
	case StateLoading:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil

	case StateHelp:
		if key.Matches(msg, a.keys.Help) || msg.String() == "esc" {
			a.state = StateBrowsing
			return a, tea.ClearScreen
		}
		return a, nil

	case StateBrowsing:
		return a.handleBrowsingKey(msg)
	}

	return a, nil
}

func (a *App) handleBrowsingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.statusMsg = ""
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.state = StateHelp
		return a, tea.ClearScreen

	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
	case key.Matches(msg, a.keys.Bottom):
		a.moveCursor(len(a.selected))
	case key.Matches(msg, a.keys.Open):
		return a, a.activate(a.cursor)

	case key.Matches(msg, a.keys.NextCategory):
		a.view.CycleFilter(model.Categories(a.courses), 1)
		a.refresh(true)
	case key.Matches(msg, a.keys.PrevCategory):
		a.view.CycleFilter(model.Categories(a.courses), -1)
		a.refresh(true)
	case key.Matches(msg, a.keys.AllCategory):
		a.view.SetFilter(model.AllCategories)
		a.refresh(true)

	case key.Matches(msg, a.keys.SortProgress):
		a.setSort(model.SortByProgress)
	case key.Matches(msg, a.keys.SortRecent):
		a.setSort(model.SortByRecent)
	case key.Matches(msg, a.keys.SortTitle):
		a.setSort(model.SortByTitle)
	case key.Matches(msg, a.keys.SortCycle):
		a.view.CycleSort()
		a.refresh(false)

	case key.Matches(msg, a.keys.Export):
		return a, a.exportCmd()

	case key.Matches(msg, a.keys.Reload):
		if a.ImportPath == "" || a.ImportPath == "-" {
			a.statusMsg = "Nothing to reload"
			return a, nil
		}
		return a, a.loadCmd()
	}

	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.state != StateBrowsing {
		return a, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
		return a, nil
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return a, nil
		}
		list := &components.CourseList{Layout: a.layout, Courses: a.selected, Cursor: a.cursor, Offset: a.offset}
		idx := list.CardAt(msg.Y)
		if idx < 0 {
			return a, nil
		}
		a.cursor = idx
		return a, a.activate(idx)
	}
	return a, nil
}

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.state {
	case StateLoading:
		return "Loading " + a.ImportPath + "..."

	case StateHelp:
		return components.RenderHelp(a.theme, a.width, a.height)

	case StateBrowsing, StateExporting:
		d := &components.Dashboard{
			Theme:    a.theme,
			Layout:   a.layout,
			Courses:  a.courses,
			View:     a.view,
			Cursor:   a.cursor,
			Offset:   a.offset,
			ErrorMsg: a.statusMsg,
		}
		out, offset := d.Render()
		a.offset = offset
		return out
	}

	return ""
}

// activate invokes the click callback for the card at idx.
func (a *App) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(a.selected) {
		return nil
	}
	c := a.selected[idx]
	id := c.ID
	a.statusMsg = fmt.Sprintf("Selected: %s", c.Title)
	log.Printf("course activated: %s", id)
	if a.OnCourseClick != nil {
		a.OnCourseClick(id)
	}
	if a.QuitOnSelect {
		return tea.Quit
	}
	return nil
}

func (a *App) setCourses(courses []model.Course) {
	a.courses = courses
	a.loaded = true
	a.state = StateBrowsing
	a.view.Reconcile(model.Categories(courses))
	a.refresh(false)
}

func (a *App) setSort(f model.SortField) {
	a.view.SetSort(f)
	a.refresh(false)
}

// refresh recomputes the selection; resetCursor jumps back to the first card.
func (a *App) refresh(resetCursor bool) {
	a.selected = model.Select(a.courses, a.view)
	if resetCursor {
		a.cursor = 0
		a.offset = 0
	}
	a.moveCursor(0)
}

func (a *App) moveCursor(delta int) {
	a.cursor += delta
	if a.cursor >= len(a.selected) {
		a.cursor = len(a.selected) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) loadCmd() tea.Cmd {
	path := a.ImportPath
	return func() tea.Msg {
		courses, err := ops.ImportJSON(path)
		return LoadDoneMsg{Courses: courses, Err: err}
	}
}

func (a *App) exportCmd() tea.Cmd {
	if !a.loaded {
		return nil
	}

	exportPath := a.ExportPath
	if exportPath == "" {
		exportPath = "coursetrack-export.json"
	}

	a.state = StateExporting
	courses := a.courses
	view := a.view
	version := a.Version
	return func() tea.Msg {
		err := ops.ExportJSON(courses, view, exportPath, version)
		return ExportDoneMsg{Path: exportPath, Err: err}
	}
}

// ViewState returns the current view state.
func (a *App) ViewState() model.ViewState { return a.view }

// Selection returns the courses currently listed, in display order.
func (a *App) Selection() []model.Course { return a.selected }

// FatalError returns a fatal load error, if any.
func (a *App) FatalError() error { return a.fatalErr }
