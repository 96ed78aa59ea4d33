package model

import (
	"context"
	"time"
)

// Gateway is the backend REST boundary. Implementations translate these
// calls into the server's HTTP contract; the core treats request and
// response bodies as opaque beyond what the methods expose.
//
// Login and Verify return the issued access token. All other
// authenticated calls take the caller-supplied bearer token.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (User, error)
	Verify(ctx context.Context, email, code string) (string, error)
	Me(ctx context.Context, token string) (User, error)

	ListHabits(ctx context.Context, token string) ([]Habit, error)
	CreateHabit(ctx context.Context, token, name, description string) (Habit, error)
	UpdateHabit(ctx context.Context, token string, id int64, name, description string) (Habit, error)
	DeleteHabit(ctx context.Context, token string, id int64) error

	ListRecords(ctx context.Context, token string, habitID int64, window Window) ([]HabitRecord, error)
	CreateRecord(ctx context.Context, token string, habitID int64, date time.Time, status bool) (HabitRecord, error)

	CreateNotification(ctx context.Context, token string, habitID int64, timeOfDay string) (Notification, error)

	ListGoals(ctx context.Context, token string, habitID int64) ([]Goal, error)
	CreateGoal(ctx context.Context, token string, habitID int64, targetCount int, window Window) (Goal, error)
}
