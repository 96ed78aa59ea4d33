package rest

import (
	"fmt"
	"time"

	"github.com/snoopapp/snoop-client/internal/model"
)

// Wire representations of the backend's JSON bodies.

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Verified bool   `json:"verified"`
}

func (u userResponse) toModel() model.User {
	return model.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Verified: u.Verified,
	}
}

type habitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type habitResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h habitResponse) toModel() model.Habit {
	habit := model.Habit{ID: h.ID, Name: h.Name}
	if h.Description != nil {
		habit.Description = *h.Description
	}
	return habit
}

type recordRequest struct {
	HabitID int64  `json:"habit_id"`
	Date    string `json:"date"`
	Status  bool   `json:"status"`
}

type recordResponse struct {
	ID      int64  `json:"id"`
	HabitID int64  `json:"habit_id"`
	Date    string `json:"date"`
	Status  bool   `json:"status"`
}

func (r recordResponse) toModel() (model.HabitRecord, error) {
	date, err := time.Parse(dateLayout, r.Date)
	if err != nil {
		return model.HabitRecord{}, fmt.Errorf("failed to parse record date %q: %w", r.Date, err)
	}

	return model.HabitRecord{
		ID:      r.ID,
		HabitID: r.HabitID,
		Date:    date,
		Status:  r.Status,
	}, nil
}

type notificationRequest struct {
	HabitID int64  `json:"habit_id"`
	Time    string `json:"time"`
	Enabled bool   `json:"enabled"`
}

type notificationResponse struct {
	ID      int64  `json:"id"`
	HabitID int64  `json:"habit_id"`
	Time    string `json:"time"`
	Enabled bool   `json:"enabled"`
}

func (n notificationResponse) toModel() model.Notification {
	return model.Notification{
		ID:      n.ID,
		HabitID: n.HabitID,
		Time:    n.Time,
		Enabled: n.Enabled,
	}
}

type goalRequest struct {
	TargetCount int    `json:"target_count"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type goalResponse struct {
	ID           int64  `json:"id"`
	HabitID      int64  `json:"habit_id"`
	TargetCount  int    `json:"target_count"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	CurrentCount int    `json:"current_count"`
	Achieved     bool   `json:"is_achieved"`
}

func (g goalResponse) toModel() (model.Goal, error) {
	start, err := time.Parse(dateLayout, g.StartDate)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse goal start date %q: %w", g.StartDate, err)
	}
	end, err := time.Parse(dateLayout, g.EndDate)
	if err != nil {
		return model.Goal{}, fmt.Errorf("failed to parse goal end date %q: %w", g.EndDate, err)
	}

	return model.Goal{
		ID:           g.ID,
		HabitID:      g.HabitID,
		TargetCount:  g.TargetCount,
		StartDate:    start,
		EndDate:      end,
		CurrentCount: g.CurrentCount,
		Achieved:     g.Achieved,
	}, nil
}
