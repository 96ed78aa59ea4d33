package service

import (
	"context"
	"fmt"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// CreateParams are the inputs to the composite habit-creation flow.
type CreateParams struct {
	Name          string
	Description   string
	NotifyEnabled bool
	NotifyTime    string
}

// HabitCreationOrchestrator composes habit creation with an optional
// notification attachment. A notification failure after the habit was
// created is a partial failure: it is returned as a warning next to the
// created habit, never as the operation's error.
type HabitCreationOrchestrator struct {
	habits  *HabitRepository
	gateway model.Gateway
	logger  *logger.Logger
}

// NewHabitCreationOrchestrator creates a HabitCreationOrchestrator.
func NewHabitCreationOrchestrator(habits *HabitRepository, gateway model.Gateway, logger *logger.Logger) *HabitCreationOrchestrator {
	return &HabitCreationOrchestrator{
		habits:  habits,
		gateway: gateway,
		logger:  logger,
	}
}

// Create validates the params, creates the habit, and attaches the
// requested notification. The returned *model.PartialFailure is non-nil
// only when the habit was created but the notification was not.
func (o *HabitCreationOrchestrator) Create(ctx context.Context, token string, params CreateParams) (model.Habit, *model.PartialFailure, error) {
	if params.NotifyEnabled && params.NotifyTime == "" {
		return model.Habit{}, nil, model.NewValidationError("a notification time is required when notifications are enabled")
	}

	habit, err := o.habits.Create(ctx, token, params.Name, params.Description)
	if err != nil {
		return model.Habit{}, nil, err
	}

	if !params.NotifyEnabled {
		return habit, nil, nil
	}

	if _, err := o.gateway.CreateNotification(ctx, token, habit.ID, params.NotifyTime); err != nil {
		o.logger.Info("Habit orchestrator: notification creation failed after habit was created",
			"habit_id", habit.ID,
			"error", err.Error())

		warning := &model.PartialFailure{
			Message: fmt.Sprintf("habit %q was created, but setting up its notification failed; edit the habit to retry", habit.Name),
			Err:     err,
		}
		return habit, warning, nil
	}

	o.logger.Info("Habit orchestrator: habit created with notification",
		"habit_id", habit.ID,
		"time", params.NotifyTime)

	return habit, nil, nil
}
