package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sadopc/coursetrack/internal/ops"
)

const helperEnvKey = "GO_WANT_COURSETRACK_HELPER_PROCESS"

type cliResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func TestCLIHelperProcess(t *testing.T) {
	if os.Getenv(helperEnvKey) != "1" {
		return
	}

	sep := -1
	for i, arg := range os.Args {
		if arg == "--" {
			sep = i
			break
		}
	}
	if sep == -1 {
		fmt.Fprintln(os.Stderr, "missing -- argument separator for helper process")
		os.Exit(2)
	}

	os.Args = append([]string{os.Args[0]}, os.Args[sep+1:]...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)

	main()
	os.Exit(0)
}

func TestE2E_PrintWhenStdoutIsNotATerminal(t *testing.T) {
	input := writeCourses(t)

	result := runCLI(t, "", "--env=", input)
	if result.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr:\n%s", result.exitCode, result.stderr)
	}
	for _, want := range []string{"My Learning Progress", "Total Courses", "Go Fundamentals", "SQL Basics", "63%"} {
		if !strings.Contains(result.stdout, want) {
			t.Errorf("expected %q in output:\n%s", want, result.stdout)
		}
	}
}

func TestE2E_PrintFilteredToUnknownCategory(t *testing.T) {
	input := writeCourses(t)

	result := runCLI(t, "", "--env=", "--print", "--category", "cooking", input)
	if result.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr:\n%s", result.exitCode, result.stderr)
	}
	if !strings.Contains(result.stdout, "No courses found. Start learning today!") {
		t.Fatalf("expected empty state, got:\n%s", result.stdout)
	}
}

func TestE2E_ReadsStdin(t *testing.T) {
	data, err := os.ReadFile(writeCourses(t))
	if err != nil {
		t.Fatal(err)
	}

	result := runCLI(t, string(data), "--env=", "--print")
	if result.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr:\n%s", result.exitCode, result.stderr)
	}
	if !strings.Contains(result.stdout, "Color Theory") {
		t.Fatalf("expected stdin courses in output, got:\n%s", result.stdout)
	}
}

func TestE2E_ExportImportRoundTrip(t *testing.T) {
	input := writeCourses(t)
	exportPath := filepath.Join(t.TempDir(), "snapshot.json")

	result := runCLI(t, "", "--env=", "--sort", "title", "--export", exportPath, input)
	if result.exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstderr:\n%s", result.exitCode, result.stderr)
	}
	if !strings.Contains(result.stdout, "Exported to "+exportPath) {
		t.Fatalf("expected export confirmation in stdout, got:\n%s", result.stdout)
	}

	courses, err := ops.ImportJSON(exportPath)
	if err != nil {
		t.Fatalf("importing exported JSON failed: %v", err)
	}
	var titles []string
	for _, c := range courses {
		titles = append(titles, c.Title)
	}
	if got := strings.Join(titles, ","); got != "Color Theory,Go Fundamentals,SQL Basics" {
		t.Fatalf("unexpected export order: %s", got)
	}

	// Re-importing a snapshot renders like the original list.
	again := runCLI(t, "", "--env=", "--print", exportPath)
	if again.exitCode != 0 || !strings.Contains(again.stdout, "63%") {
		t.Fatalf("re-import failed (exit %d):\n%s\n%s", again.exitCode, again.stdout, again.stderr)
	}
}

func TestE2E_Errors(t *testing.T) {
	input := writeCourses(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"bad sort", []string{"--env=", "--sort", "newest", input}, "unknown sort"},
		{"missing file", []string{"--env=", "--print", filepath.Join(t.TempDir(), "nope.json")}, "cannot open import file"},
		{"print and select", []string{"--env=", "--print", "--select", input}, "cannot be used together"},
		{"too many args", []string{"--env=", input, input}, "too many positional arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runCLI(t, "", tt.args...)
			if result.exitCode != 1 {
				t.Fatalf("expected exit code 1, got %d\nstdout:\n%s\nstderr:\n%s", result.exitCode, result.stdout, result.stderr)
			}
			if !strings.Contains(result.stderr, tt.msg) {
				t.Fatalf("expected %q in stderr, got:\n%s", tt.msg, result.stderr)
			}
		})
	}
}

func TestE2E_Version(t *testing.T) {
	result := runCLI(t, "", "--version")
	if result.exitCode != 0 || !strings.Contains(result.stdout, "coursetrack dev") {
		t.Fatalf("unexpected version output (exit %d): %q", result.exitCode, result.stdout)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	cmdArgs := append([]string{"-test.run=^TestCLIHelperProcess$", "--"}, args...)
	cmd := exec.Command(os.Args[0], cmdArgs...)
	cmd.Env = append(os.Environ(), helperEnvKey+"=1", "COURSETRACK_FILE=", "COURSETRACK_SORT=", "COURSETRACK_CATEGORY=")
	cmd.Stdin = strings.NewReader(stdin)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := cliResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}

	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("failed to execute helper process: %v", err)
	}

	result.exitCode = exitErr.ExitCode()
	return result
}

func writeCourses(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "courses.json")
	data := `[
  {"id":"a","title":"Go Fundamentals","totalLessons":10,"completedLessons":10,"category":"dev"},
  {"id":"b","title":"Color Theory","totalLessons":4,"completedLessons":2,"category":"design","estimatedTime":45},
  {"id":"c","title":"SQL Basics","totalLessons":5,"completedLessons":0,"category":"dev"}
]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
