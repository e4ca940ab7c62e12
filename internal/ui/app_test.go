package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ui/components"
	"github.com/sadopc/coursetrack/internal/ui/style"
)

func testCourses() []model.Course {
	return []model.Course{
		{ID: "a", Title: "Go", TotalLessons: 10, CompletedLessons: 10, Category: "dev"},
		{ID: "b", Title: "Color", TotalLessons: 4, CompletedLessons: 2, Category: "design"},
		{ID: "c", Title: "SQL", TotalLessons: 5, CompletedLessons: 0, Category: "dev"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func selectionIDs(a *App) []string {
	var out []string
	for _, c := range a.Selection() {
		out = append(out, c.ID)
	}
	return out
}

func sized(a *App, w, h int) *App {
	a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return a
}

func TestAppFatalError_SetOnLoadError(t *testing.T) {
	app := NewApp("missing.json", model.DefaultViewState())
	loadErr := errors.New("load failed")

	_, cmd := app.Update(LoadDoneMsg{Err: loadErr})
	if !errors.Is(app.FatalError(), loadErr) {
		t.Fatalf("expected fatal error %v, got %v", loadErr, app.FatalError())
	}
	if cmd == nil {
		t.Fatal("expected quit command on load error")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestAppReloadError_IsStatusNotFatal(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())

	_, cmd := app.Update(LoadDoneMsg{Err: errors.New("gone")})
	if app.FatalError() != nil {
		t.Fatalf("reload failure should not be fatal, got %v", app.FatalError())
	}
	if cmd != nil {
		t.Fatal("reload failure should not quit")
	}
	if !strings.Contains(app.statusMsg, "Reload failed") {
		t.Fatalf("unexpected status %q", app.statusMsg)
	}
	if len(app.Selection()) != 3 {
		t.Fatal("previous courses should be kept after a failed reload")
	}
}

func TestAppFatalError_NotSetByStatusMessages(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())

	_, _ = app.Update(ExportDoneMsg{Path: "out.json"})
	if app.FatalError() != nil {
		t.Fatalf("expected nil fatal error, got %v", app.FatalError())
	}
	if app.statusMsg == "" {
		t.Fatal("expected status message to be set for successful export")
	}
}

func TestApp_LoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courses.json")
	data := `[{"id":"x","title":"Rust","totalLessons":2,"completedLessons":1,"category":"dev"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	app := NewApp(path, model.DefaultViewState())
	cmd := app.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	app.Update(cmd())

	if app.state != StateBrowsing {
		t.Fatalf("state = %d, want browsing", app.state)
	}
	if got := selectionIDs(app); len(got) != 1 || got[0] != "x" {
		t.Fatalf("selection = %v", got)
	}
}

func TestApp_SortAndFilterKeys(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())

	if got := strings.Join(selectionIDs(app), ","); got != "a,b,c" {
		t.Fatalf("progress order = %s", got)
	}

	app.Update(keyRunes("n"))
	if got := strings.Join(selectionIDs(app), ","); got != "b,a,c" {
		t.Fatalf("title order = %s", got)
	}

	app.Update(keyRunes("c")) // all -> dev
	if app.ViewState().FilterCategory != "dev" {
		t.Fatalf("filter = %q, want dev", app.ViewState().FilterCategory)
	}
	if got := strings.Join(selectionIDs(app), ","); got != "a,c" {
		t.Fatalf("dev selection = %s", got)
	}

	app.Update(keyRunes("C")) // dev -> all
	if app.ViewState().FilterCategory != model.AllCategories {
		t.Fatalf("filter = %q, want all", app.ViewState().FilterCategory)
	}

	app.Update(keyRunes("t"))
	if got := strings.Join(selectionIDs(app), ","); got != "a,b,c" {
		t.Fatalf("recent order without timestamps should keep input order, got %s", got)
	}
}

func TestApp_EnterInvokesCallback(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())
	var clicked []string
	app.OnCourseClick = func(id string) { clicked = append(clicked, id) }

	app.Update(keyRunes("j"))
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("enter should not quit unless QuitOnSelect is set")
	}
	if len(clicked) != 1 || clicked[0] != "b" {
		t.Fatalf("clicked = %v, want [b]", clicked)
	}
}

func TestApp_EnterWithoutCallbackIsNoop(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command")
	}
}

func TestApp_QuitOnSelect(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())
	app.QuitOnSelect = true
	var got string
	app.OnCourseClick = func(id string) { got = id }

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got != "a" {
		t.Fatalf("callback id = %q, want a", got)
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestApp_MouseClickActivatesCard(t *testing.T) {
	app := sized(NewAppWithCourses(testCourses(), model.DefaultViewState()), 80, 40)
	var clicked string
	app.OnCourseClick = func(id string) { clicked = id }

	layout := style.NewLayout(80, 40)
	y := layout.ListTop() + style.CardHeight + 2 // inside the second card
	app.Update(tea.MouseMsg{X: 5, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})

	if clicked != "b" {
		t.Fatalf("clicked = %q, want b", clicked)
	}
	if app.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", app.cursor)
	}

	clicked = ""
	app.Update(tea.MouseMsg{X: 5, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if clicked != "" {
		t.Fatalf("click on header should not activate a card, got %q", clicked)
	}
}

func TestApp_CursorClampsToSelection(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())
	app.Update(keyRunes("G"))
	if app.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", app.cursor)
	}
	app.Update(keyRunes("c")) // dev: 2 courses, cursor reset
	if app.cursor != 0 {
		t.Fatalf("cursor = %d, want 0 after filter change", app.cursor)
	}
	app.Update(keyRunes("k"))
	if app.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", app.cursor)
	}
}

func TestApp_ReloadReconcilesMissingCategory(t *testing.T) {
	view := model.DefaultViewState()
	view.SetFilter("design")
	app := NewAppWithCourses(testCourses(), view)
	app.ImportPath = "courses.json"

	app.Update(LoadDoneMsg{Courses: testCourses()[:1]})
	if app.ViewState().FilterCategory != model.AllCategories {
		t.Fatalf("filter = %q, want reset to all", app.ViewState().FilterCategory)
	}
	if !strings.Contains(app.statusMsg, "Reloaded 1") {
		t.Fatalf("status = %q", app.statusMsg)
	}
}

func TestApp_ViewShowsEmptyState(t *testing.T) {
	view := model.DefaultViewState()
	app := sized(NewAppWithCourses(nil, view), 80, 30)

	out := ansi.Strip(app.View())
	if !strings.Contains(out, components.EmptyMessage) {
		t.Fatalf("expected empty state, got:\n%s", out)
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app := sized(NewAppWithCourses(testCourses(), model.DefaultViewState()), 80, 40)
	app.Update(keyRunes("?"))
	if app.state != StateHelp {
		t.Fatal("expected help state")
	}
	if !strings.Contains(ansi.Strip(app.View()), "Keyboard Shortcuts") {
		t.Fatal("help overlay not rendered")
	}
	app.Update(keyRunes("?"))
	if app.state != StateBrowsing {
		t.Fatal("expected browsing state after closing help")
	}
}

func TestApp_ExportWritesFile(t *testing.T) {
	app := NewAppWithCourses(testCourses(), model.DefaultViewState())
	app.ExportPath = filepath.Join(t.TempDir(), "snap.json")

	_, cmd := app.Update(keyRunes("E"))
	if cmd == nil {
		t.Fatal("expected export command")
	}
	if app.state != StateExporting {
		t.Fatal("expected exporting state")
	}
	app.Update(cmd())
	if app.state != StateBrowsing {
		t.Fatal("expected browsing state after export")
	}
	if _, err := os.Stat(app.ExportPath); err != nil {
		t.Fatalf("export file missing: %v", err)
	}
}
