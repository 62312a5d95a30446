package model

import (
	"fmt"
	"time"
)

// Window is a summarization period anchored at the current moment.
type Window string

const (
	// WindowToday covers the current civil day.
	WindowToday Window = "today"
	// WindowWeek covers the current calendar week, Monday through Sunday.
	WindowWeek Window = "week"
	// WindowMonth covers the current calendar month.
	WindowMonth Window = "month"
)

// ParseWindow converts user input into a Window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowToday, WindowWeek, WindowMonth:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown window %q (expected today, week, or month)", s)
	}
}

// Bounds returns the half-open interval [start, end) the window covers,
// evaluated at now in the given location. Boundaries fall on local
// midnights, so the interval compares cleanly against civil dates.
func (w Window) Bounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	dayStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	switch w {
	case WindowWeek:
		// Monday-based week; time.Weekday has Sunday == 0.
		offset := (int(dayStart.Weekday()) + 6) % 7
		start := dayStart.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case WindowMonth:
		start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(0, 1, 0)
	default:
		return dayStart, dayStart.AddDate(0, 0, 1)
	}
}
