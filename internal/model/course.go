package model

import (
	"math"
	"time"
)

// Tier classifies a course by how far along it is.
type Tier int

const (
	TierNotStarted Tier = iota
	TierStarted
	TierMid
	TierComplete
)

// TierName returns the display name for a tier.
func TierName(t Tier) string {
	switch t {
	case TierComplete:
		return "Complete"
	case TierMid:
		return "Halfway"
	case TierStarted:
		return "Started"
	default:
		return "Not started"
	}
}

// Course is a single progress-tracked course. It is read-only to the dashboard.
type Course struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	TotalLessons     int        `json:"totalLessons"`
	CompletedLessons int        `json:"completedLessons"`
	Category         string     `json:"category"`
	ThumbnailURL     string     `json:"thumbnailUrl,omitempty"`
	EstimatedTime    *int       `json:"estimatedTime,omitempty"` // minutes remaining
	LastAccessed     *time.Time `json:"lastAccessed,omitempty"`
}

// Ratio returns completed/total, or 0 when the course has no lessons.
func (c Course) Ratio() float64 {
	if c.TotalLessons <= 0 {
		return 0
	}
	return float64(c.CompletedLessons) / float64(c.TotalLessons)
}

// Percent returns the completion percentage rounded to the nearest integer.
func (c Course) Percent() int {
	return RoundPercent(c.CompletedLessons, c.TotalLessons)
}

// Tier returns the visual tier for the course's rounded percentage.
func (c Course) Tier() Tier {
	return TierFor(c.Percent())
}

// IsComplete reports whether every lesson has been completed.
func (c Course) IsComplete() bool {
	return c.CompletedLessons == c.TotalLessons
}

// IsInProgress reports whether some but not all lessons are completed.
func (c Course) IsInProgress() bool {
	return c.CompletedLessons > 0 && c.CompletedLessons < c.TotalLessons
}

// TierFor maps a rounded percentage to its tier.
func TierFor(pct int) Tier {
	switch {
	case pct >= 100:
		return TierComplete
	case pct >= 50:
		return TierMid
	case pct > 0:
		return TierStarted
	default:
		return TierNotStarted
	}
}

// RoundPercent returns round(part/total*100), or 0 if total is not positive.
func RoundPercent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
