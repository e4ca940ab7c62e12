package ops

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sadopc/coursetrack/internal/model"
)

// ImportJSON loads a course list from path ("-" reads stdin).
//
// Two layouts are accepted: a bare JSON array of courses, or a snapshot
// object written by ExportJSON whose "courses" field is read back.
func ImportJSON(path string) ([]model.Course, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open import file: %w", err)
	}
	return ParseCourses(data)
}

// ParseCourses decodes either accepted layout and assigns an ID to any
// course that arrived without one.
func ParseCourses(data []byte) ([]model.Course, error) {
	trimmed := trimLeadingWhitespace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty input")
	}

	var courses []model.Course
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &courses); err != nil {
			return nil, fmt.Errorf("invalid course list: %w", err)
		}
	case '{':
		var snap Snapshot
		if err := json.Unmarshal(trimmed, &snap); err != nil {
			return nil, fmt.Errorf("invalid snapshot: %w", err)
		}
		if snap.Courses == nil {
			return nil, fmt.Errorf("invalid snapshot: missing \"courses\"")
		}
		courses = make([]model.Course, len(snap.Courses))
		for i, e := range snap.Courses {
			courses[i] = e.Course
		}
	default:
		return nil, fmt.Errorf("invalid JSON: expected array or object, got %q", trimmed[0])
	}

	for i := range courses {
		if strings.TrimSpace(courses[i].ID) == "" {
			courses[i].ID = uuid.NewString()
		}
	}
	return courses, nil
}

func trimLeadingWhitespace(data []byte) []byte {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return data[i:]
		}
	}
	return nil
}
