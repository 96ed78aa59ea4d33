package model

import "time"

// Window is the date range over which completion percentage is computed.
// Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days covered by the window.
func (w Window) Days() int {
	days := int(w.End.Sub(w.Start).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// JanuaryWindow returns the reference reporting period: January 1-31 of
// the given year.
func JanuaryWindow(year int) Window {
	return Window{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

// MonthWindow returns the full calendar month containing the given
// year/month pair.
func MonthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Window{
		Start: start,
		End:   start.AddDate(0, 1, -1),
	}
}

// ProgressSummary is the derived completion summary for one habit over
// a window. It is recomputed on demand and never persisted. Degraded is
// set when the record fetch failed and the zero summary was substituted.
type ProgressSummary struct {
	HabitID    int64
	Completed  int
	WindowDays int
	Percentage int
	Degraded   bool
}
