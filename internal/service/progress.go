package service

import (
	"context"
	"math"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// ProgressAggregator turns a habit's raw completion records over a date
// window into a completion summary.
type ProgressAggregator struct {
	gateway model.Gateway
	logger  *logger.Logger
}

// NewProgressAggregator creates a ProgressAggregator.
func NewProgressAggregator(gateway model.Gateway, logger *logger.Logger) *ProgressAggregator {
	return &ProgressAggregator{
		gateway: gateway,
		logger:  logger,
	}
}

// Summarize computes the completion summary for the given records over
// the window. The window length is fixed to the requested range
// regardless of how many records came back.
func Summarize(habitID int64, records []model.HabitRecord, window model.Window) model.ProgressSummary {
	completed := 0
	for _, rec := range records {
		if rec.Status {
			completed++
		}
	}

	days := window.Days()

	return model.ProgressSummary{
		HabitID:    habitID,
		Completed:  completed,
		WindowDays: days,
		Percentage: percentage(completed, days),
	}
}

// ForHabit fetches the habit's records for the window and summarizes
// them. A failed fetch degrades to the zero summary over the full
// window instead of surfacing an error; Degraded marks the substitution
// for callers that need to tell it apart from genuine zero progress.
func (a *ProgressAggregator) ForHabit(ctx context.Context, token string, habitID int64, window model.Window) model.ProgressSummary {
	records, err := a.gateway.ListRecords(ctx, token, habitID, window)
	if err != nil {
		a.logger.Error("Progress aggregator: failed to fetch records",
			"habit_id", habitID,
			"error", err.Error())
		return model.ProgressSummary{
			HabitID:    habitID,
			WindowDays: window.Days(),
			Degraded:   true,
		}
	}

	return Summarize(habitID, records, window)
}

func percentage(completed, days int) int {
	if days <= 0 {
		return 0
	}

	p := int(math.Round(float64(completed) / float64(days) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
