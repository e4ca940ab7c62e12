// Package config resolves coursetrack defaults from a .env file and the
// environment. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sadopc/coursetrack/internal/model"
)

// DefaultExportPath is where the TUI writes snapshots when none is configured.
const DefaultExportPath = "coursetrack-export.json"

// Config holds the resolved settings.
type Config struct {
	CourseFile string
	ExportPath string
	View       model.ViewState
}

// Load reads envFile (if it exists) into the process environment, then
// builds a Config from COURSETRACK_* variables. Variables already set in the
// environment win over the file. A missing envFile is not an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("cannot read %s: %w", envFile, err)
		}
	}

	cfg := Config{
		CourseFile: os.Getenv("COURSETRACK_FILE"),
		ExportPath: getenv("COURSETRACK_EXPORT", DefaultExportPath),
		View:       model.DefaultViewState(),
	}

	if s := os.Getenv("COURSETRACK_SORT"); s != "" {
		f, err := model.ParseSortField(s)
		if err != nil {
			return Config{}, fmt.Errorf("COURSETRACK_SORT: %w", err)
		}
		cfg.View.SetSort(f)
	}
	cfg.View.SetFilter(os.Getenv("COURSETRACK_CATEGORY"))

	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
