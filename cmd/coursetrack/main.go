package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/coursetrack/internal/config"
	"github.com/sadopc/coursetrack/internal/model"
	"github.com/sadopc/coursetrack/internal/ops"
	"github.com/sadopc/coursetrack/internal/ui"
	"github.com/sadopc/coursetrack/internal/ui/components"
	"github.com/sadopc/coursetrack/internal/ui/style"
	"golang.org/x/term"
)

var (
	version = "dev"
)

const (
	defaultPrintWidth = 100
	debugLogFile      = "coursetrack-debug.log"
)

func main() {
	// Flags
	envFile := flag.String("env", ".env", "Read COURSETRACK_* defaults from this dotenv file if it exists")
	sortBy := flag.String("sort", "", "Initial sort: progress, recent or title")
	category := flag.String("category", "", "Initial category filter (default: all)")
	printMode := flag.Bool("print", false, "Render the dashboard once to stdout and exit")
	exportPath := flag.String("export", "", "Export a JSON snapshot (headless mode, use '-' for stdout)")
	selectMode := flag.Bool("select", false, "Print the ID of the chosen course and exit")
	noMouse := flag.Bool("no-mouse", false, "Disable mouse support")
	debug := flag.Bool("debug", false, "Write a debug log to "+debugLogFile)
	showVersion := flag.Bool("version", false, "Show version")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "coursetrack - Terminal dashboard for course progress\n\n")
		fmt.Fprintf(os.Stderr, "Usage: coursetrack [options] [courses.json|-]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  coursetrack courses.json                 Open the dashboard\n")
		fmt.Fprintf(os.Stderr, "  coursetrack --category design c.json     Start filtered to one category\n")
		fmt.Fprintf(os.Stderr, "  coursetrack --print c.json               Render once to stdout\n")
		fmt.Fprintf(os.Stderr, "  coursetrack --export snap.json c.json    Export a snapshot\n")
		fmt.Fprintf(os.Stderr, "  cat c.json | coursetrack --print -       Read courses from stdin\n")
		fmt.Fprintf(os.Stderr, "  id=$(coursetrack --select c.json)        Pick a course\n")
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("coursetrack %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := applyFlags(&cfg, *sortBy, *category); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	input, err := resolveInput(flag.Args(), cfg.CourseFile, term.IsTerminal(int(os.Stdin.Fd())))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *printMode && *selectMode {
		fmt.Fprintf(os.Stderr, "Error: --print and --select cannot be used together\n")
		os.Exit(1)
	}

	// Headless export mode
	if *exportPath != "" {
		courses, err := ops.ImportJSON(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
			os.Exit(1)
		}
		if err := ops.ExportJSON(courses, cfg.View, *exportPath, version); err != nil {
			fmt.Fprintf(os.Stderr, "Export error: %v\n", err)
			os.Exit(1)
		}
		if *exportPath != "-" {
			fmt.Printf("Exported to %s\n", *exportPath)
		}
		return
	}

	// Headless print mode, also used when stdout is not a terminal
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if *printMode || (!stdoutTTY && !*selectMode) {
		courses, err := ops.ImportJSON(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
			os.Exit(1)
		}
		width := defaultPrintWidth
		if stdoutTTY {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		fmt.Println(renderOnce(courses, cfg.View, width))
		return
	}

	// Interactive TUI mode
	if *debug {
		f, err := tea.LogToFile(debugLogFile, "debug")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	chosen, err := runTUI(input, cfg, *selectMode, !*noMouse, stdoutTTY)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *selectMode {
		if chosen == "" {
			os.Exit(1)
		}
		fmt.Println(chosen)
	}
}

func runTUI(input string, cfg config.Config, selectMode, mouse, stdoutTTY bool) (string, error) {
	app := ui.NewApp(input, cfg.View)
	app.ExportPath = cfg.ExportPath
	app.Version = version

	var chosen string
	if selectMode {
		app.QuitOnSelect = true
		app.OnCourseClick = func(id string) { chosen = id }
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if !stdoutTTY {
		// stdout is captured in --select mode; draw on stderr instead.
		opts = append(opts, tea.WithOutput(os.Stderr))
	}
	if input == "-" {
		// Courses arrive on stdin, so keyboard input has to come from the tty.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return "", fmt.Errorf("cannot open terminal for input: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return "", err
	}
	if err := app.FatalError(); err != nil {
		return "", err
	}
	return chosen, nil
}

// renderOnce draws the full dashboard with every selected card visible.
func renderOnce(courses []model.Course, view model.ViewState, width int) string {
	n := len(model.Select(courses, view))
	listHeight := n * style.CardHeight
	if listHeight < 4 {
		listHeight = 4 // empty-state box
	}
	d := &components.Dashboard{
		Theme:   style.DefaultTheme(),
		Layout:  style.NewLayout(width, style.ChromeHeight+listHeight),
		Courses: courses,
		View:    view,
		Cursor:  -1,
	}
	out, _ := d.Render()
	return out
}

// applyFlags layers command-line flags over the environment config.
func applyFlags(cfg *config.Config, sortBy, category string) error {
	if sortBy != "" {
		f, err := model.ParseSortField(sortBy)
		if err != nil {
			return err
		}
		cfg.View.SetSort(f)
	}
	if category != "" {
		cfg.View.SetFilter(category)
	}
	return nil
}

// resolveInput picks the course source: the positional argument, then the
// configured file, then stdin when it is not a terminal.
func resolveInput(args []string, configured string, stdinTTY bool) (string, error) {
	if len(args) > 1 {
		return "", fmt.Errorf("too many positional arguments")
	}
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if configured != "" {
		return configured, nil
	}
	if !stdinTTY {
		return "-", nil
	}
	return "", errors.New("no course file given (pass a path, '-' for stdin, or set COURSETRACK_FILE)")
}
