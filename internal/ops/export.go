package ops

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/sadopc/coursetrack/internal/model"
)

// Snapshot is the export document:
//
//	{"progname":"coursetrack","progver":"1.0","timestamp":1234567890,
//	 "view":{"sortBy":"progress","filterCategory":"all"},
//	 "summary":{...},
//	 "courses":[{"id":"a",...,"percent":100,"tier":"Complete"}]}
type Snapshot struct {
	Progname  string          `json:"progname"`
	Progver   string          `json:"progver"`
	Timestamp int64           `json:"timestamp"`
	View      snapshotView    `json:"view"`
	Summary   snapshotSummary `json:"summary"`
	Courses   []snapshotEntry `json:"courses"`
}

type snapshotView struct {
	SortBy         string `json:"sortBy"`
	FilterCategory string `json:"filterCategory"`
}

type snapshotSummary struct {
	TotalCourses      int `json:"totalCourses"`
	CompletedCourses  int `json:"completedCourses"`
	InProgressCourses int `json:"inProgressCourses"`
	OverallProgress   int `json:"overallProgress"`
	TotalLessons      int `json:"totalLessons"`
	CompletedLessons  int `json:"completedLessons"`
}

type snapshotEntry struct {
	model.Course
	Percent int    `json:"percent"`
	Tier    string `json:"tier"`
}

// NewSnapshot builds the export document. Summary covers every course;
// the course list is the view's selection.
func NewSnapshot(courses []model.Course, view model.ViewState, version string) Snapshot {
	if version == "" {
		version = "dev"
	}
	sum := model.Aggregate(courses)
	selected := model.Select(courses, view)

	entries := make([]snapshotEntry, len(selected))
	for i, c := range selected {
		entries[i] = snapshotEntry{
			Course:  c,
			Percent: c.Percent(),
			Tier:    model.TierName(c.Tier()),
		}
	}

	return Snapshot{
		Progname:  "coursetrack",
		Progver:   version,
		Timestamp: time.Now().Unix(),
		View: snapshotView{
			SortBy:         view.SortBy.String(),
			FilterCategory: view.FilterCategory,
		},
		Summary: snapshotSummary{
			TotalCourses:      sum.TotalCourses,
			CompletedCourses:  sum.CompletedCourses,
			InProgressCourses: sum.InProgressCourses,
			OverallProgress:   sum.OverallProgress,
			TotalLessons:      sum.TotalLessons,
			CompletedLessons:  sum.CompletedLessons,
		},
		Courses: entries,
	}
}

// ExportJSON writes a snapshot of courses under view to path ("-" = stdout).
// For file targets, writes to a temp file first and atomically renames on
// success, so a partial file is never left behind on error.
func ExportJSON(courses []model.Course, view model.ViewState, path string, version string) (retErr error) {
	snap := NewSnapshot(courses, view, version)
	if path == "-" {
		return exportToWriter(snap, os.Stdout)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".coursetrack-export-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot create export file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if retErr != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if err := exportToWriter(snap, tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		// On Windows, Rename cannot replace an existing destination.
		if runtime.GOOS != "windows" {
			return err
		}
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return fmt.Errorf("cannot replace export file %s: %w", path, err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return err
		}
	}
	return nil
}

func exportToWriter(snap Snapshot, out io.Writer) error {
	bw := bufio.NewWriterSize(out, 64*1024)
	enc := json.NewEncoder(bw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	return bw.Flush()
}
