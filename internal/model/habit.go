package model

import "time"

// Habit is a user-defined recurring activity tracked for completion.
type Habit struct {
	ID          int64
	Name        string
	Description string
}

// HabitRecord is a single date's completion status for one habit.
type HabitRecord struct {
	ID      int64
	HabitID int64
	Date    time.Time
	Status  bool
}

// Notification is an optional reminder attached to a habit at creation
// time. Its lifecycle is decoupled from the habit's after creation.
type Notification struct {
	ID      int64
	HabitID int64
	Time    string
	Enabled bool
}

// Goal is a target completion count for a habit over a date range.
// CurrentCount and Achieved are computed server-side.
type Goal struct {
	ID           int64
	HabitID      int64
	TargetCount  int
	StartDate    time.Time
	EndDate      time.Time
	CurrentCount int
	Achieved     bool
}
