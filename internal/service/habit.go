package service

import (
	"context"
	"strings"
	"time"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// HabitRepository is the CRUD client for habits. It keeps no local
// cache: after any successful mutation the caller re-invokes List for
// authoritative state. Every method takes the caller-supplied session
// token.
type HabitRepository struct {
	gateway model.Gateway
	logger  *logger.Logger
}

// NewHabitRepository creates a HabitRepository.
func NewHabitRepository(gateway model.Gateway, logger *logger.Logger) *HabitRepository {
	return &HabitRepository{
		gateway: gateway,
		logger:  logger,
	}
}

// List fetches the full habit set in whatever order the Gateway
// returns it.
func (r *HabitRepository) List(ctx context.Context, token string) ([]model.Habit, error) {
	habits, err := r.gateway.ListHabits(ctx, token)
	if err != nil {
		r.logger.Error("Habit repository: failed to list habits",
			"error", err.Error())
		return nil, err
	}

	return habits, nil
}

// Create creates a habit. An empty name fails before any network call.
func (r *HabitRepository) Create(ctx context.Context, token, name, description string) (model.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return model.Habit{}, model.NewRepositoryError("habit name must not be empty", nil)
	}

	habit, err := r.gateway.CreateHabit(ctx, token, name, description)
	if err != nil {
		r.logger.Error("Habit repository: failed to create habit",
			"name", name,
			"error", err.Error())
		return model.Habit{}, err
	}

	r.logger.Info("Habit repository: habit created",
		"habit_id", habit.ID,
		"name", habit.Name)

	return habit, nil
}

// Update fully replaces the two mutable fields of a habit.
func (r *HabitRepository) Update(ctx context.Context, token string, id int64, name, description string) (model.Habit, error) {
	if strings.TrimSpace(name) == "" {
		return model.Habit{}, model.NewRepositoryError("habit name must not be empty", nil)
	}

	habit, err := r.gateway.UpdateHabit(ctx, token, id, name, description)
	if err != nil {
		r.logger.Error("Habit repository: failed to update habit",
			"habit_id", id,
			"error", err.Error())
		return model.Habit{}, err
	}

	return habit, nil
}

// Delete deletes a habit. Success requires the Gateway's explicit
// no-content acknowledgment; deletes are never retried since a retried
// delete against an already-deleted resource has undefined Gateway
// semantics.
func (r *HabitRepository) Delete(ctx context.Context, token string, id int64) error {
	if err := r.gateway.DeleteHabit(ctx, token, id); err != nil {
		r.logger.Error("Habit repository: failed to delete habit",
			"habit_id", id,
			"error", err.Error())
		return err
	}

	r.logger.Info("Habit repository: habit deleted", "habit_id", id)

	return nil
}

// CheckIn writes one completion record for the habit on the given date.
func (r *HabitRepository) CheckIn(ctx context.Context, token string, habitID int64, date time.Time, status bool) (model.HabitRecord, error) {
	record, err := r.gateway.CreateRecord(ctx, token, habitID, date, status)
	if err != nil {
		r.logger.Error("Habit repository: failed to record completion",
			"habit_id", habitID,
			"date", date.Format("2006-01-02"),
			"error", err.Error())
		return model.HabitRecord{}, err
	}

	return record, nil
}
