package model

// Summary holds the aggregate statistics over a course list.
type Summary struct {
	TotalCourses      int
	CompletedCourses  int
	InProgressCourses int
	NotStarted        int
	TotalLessons      int
	CompletedLessons  int
	OverallProgress   int // rounded percentage of all lessons completed
}

// Aggregate reduces courses into summary counts. Empty input yields a zero Summary.
func Aggregate(courses []Course) Summary {
	var s Summary
	s.TotalCourses = len(courses)
	for _, c := range courses {
		if c.IsComplete() {
			s.CompletedCourses++
		}
		if c.IsInProgress() {
			s.InProgressCourses++
		}
		if c.CompletedLessons == 0 {
			s.NotStarted++
		}
		s.TotalLessons += c.TotalLessons
		s.CompletedLessons += c.CompletedLessons
	}
	s.OverallProgress = RoundPercent(s.CompletedLessons, s.TotalLessons)
	return s
}
