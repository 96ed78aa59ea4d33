package service

import (
	"context"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// GoalTracker is the client for target-count goals attached to habits.
// CurrentCount and Achieved are computed server-side; the client only
// renders them.
type GoalTracker struct {
	gateway model.Gateway
	logger  *logger.Logger
}

// NewGoalTracker creates a GoalTracker.
func NewGoalTracker(gateway model.Gateway, logger *logger.Logger) *GoalTracker {
	return &GoalTracker{
		gateway: gateway,
		logger:  logger,
	}
}

// List fetches the goals for a habit.
func (g *GoalTracker) List(ctx context.Context, token string, habitID int64) ([]model.Goal, error) {
	goals, err := g.gateway.ListGoals(ctx, token, habitID)
	if err != nil {
		g.logger.Error("Goal tracker: failed to list goals",
			"habit_id", habitID,
			"error", err.Error())
		return nil, err
	}

	return goals, nil
}

// Create creates a goal with the given target over the window. A
// non-positive target fails before any network call.
func (g *GoalTracker) Create(ctx context.Context, token string, habitID int64, targetCount int, window model.Window) (model.Goal, error) {
	if targetCount <= 0 {
		return model.Goal{}, model.NewValidationError("goal target must be greater than zero")
	}

	goal, err := g.gateway.CreateGoal(ctx, token, habitID, targetCount, window)
	if err != nil {
		g.logger.Error("Goal tracker: failed to create goal",
			"habit_id", habitID,
			"error", err.Error())
		return model.Goal{}, err
	}

	g.logger.Info("Goal tracker: goal created",
		"habit_id", habitID,
		"target", targetCount)

	return goal, nil
}
