package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snoopapp/snoop-client/internal/model"
	"github.com/snoopapp/snoop-client/internal/service"
	"github.com/snoopapp/snoop-client/internal/store/file"
	"github.com/snoopapp/snoop-client/internal/testutil"
	"github.com/snoopapp/snoop-client/internal/token"
)

type fakeGateway struct {
	user    model.User
	habits  []model.Habit
	records []model.HabitRecord
	meErr   error
}

func (f *fakeGateway) Login(_ context.Context, _, _ string) (string, error) {
	return "tok-login", nil
}

func (f *fakeGateway) Register(_ context.Context, _, _, _ string) (model.User, error) {
	return f.user, nil
}

func (f *fakeGateway) Verify(_ context.Context, _, _ string) (string, error) {
	return "tok-verify", nil
}

func (f *fakeGateway) Me(_ context.Context, _ string) (model.User, error) {
	if f.meErr != nil {
		return model.User{}, f.meErr
	}
	return f.user, nil
}

func (f *fakeGateway) ListHabits(_ context.Context, _ string) ([]model.Habit, error) {
	return f.habits, nil
}

func (f *fakeGateway) CreateHabit(_ context.Context, _, name, description string) (model.Habit, error) {
	habit := model.Habit{ID: int64(len(f.habits) + 1), Name: name, Description: description}
	f.habits = append(f.habits, habit)
	return habit, nil
}

func (f *fakeGateway) UpdateHabit(_ context.Context, _ string, id int64, name, description string) (model.Habit, error) {
	return model.Habit{ID: id, Name: name, Description: description}, nil
}

func (f *fakeGateway) DeleteHabit(_ context.Context, _ string, _ int64) error {
	return nil
}

func (f *fakeGateway) ListRecords(_ context.Context, _ string, _ int64, _ model.Window) ([]model.HabitRecord, error) {
	return f.records, nil
}

func (f *fakeGateway) CreateRecord(_ context.Context, _ string, habitID int64, date time.Time, status bool) (model.HabitRecord, error) {
	return model.HabitRecord{ID: 1, HabitID: habitID, Date: date, Status: status}, nil
}

func (f *fakeGateway) CreateNotification(_ context.Context, _ string, habitID int64, timeOfDay string) (model.Notification, error) {
	return model.Notification{ID: 1, HabitID: habitID, Time: timeOfDay, Enabled: true}, nil
}

func (f *fakeGateway) ListGoals(_ context.Context, _ string, _ int64) ([]model.Goal, error) {
	return nil, nil
}

func (f *fakeGateway) CreateGoal(_ context.Context, _ string, habitID int64, targetCount int, window model.Window) (model.Goal, error) {
	return model.Goal{ID: 1, HabitID: habitID, TargetCount: targetCount, StartDate: window.Start, EndDate: window.End}, nil
}

func newTestApp(t *testing.T, gw model.Gateway, script string) (*App, *bytes.Buffer, *service.SessionManager) {
	t.Helper()
	log := testutil.MakeNoopLogger()

	store, err := file.New(t.TempDir() + "/token")
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "tok-persisted"))

	sessions := service.NewSessionManager(gw, store, token.NewInspector(), log)
	habits := service.NewHabitRepository(gw, log)
	progress := service.NewProgressAggregator(gw, log)
	creator := service.NewHabitCreationOrchestrator(habits, gw, log)
	goals := service.NewGoalTracker(gw, log)

	out := &bytes.Buffer{}
	app := New(sessions, habits, progress, creator, goals, model.JanuaryWindow(2025), strings.NewReader(script), out)

	return app, out, sessions
}

func TestApp_RestoredSessionShowsDashboard(t *testing.T) {
	gw := &fakeGateway{
		user:   model.User{ID: 1, Name: "Taro", Email: "a@b.c"},
		habits: []model.Habit{{ID: 4, Name: "running", Description: "30 min"}},
	}
	for i := 0; i < 10; i++ {
		gw.records = append(gw.records, model.HabitRecord{HabitID: 4, Status: true})
	}

	app, out, sessions := newTestApp(t, gw, "q\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, model.StateAuthenticated, sessions.State())
	assert.Contains(t, out.String(), "dashboard: Taro")
	assert.Contains(t, out.String(), "running")
	assert.Contains(t, out.String(), "32% (10/31 days)")
}

func TestApp_FailedRestoreFallsBackToAuthMenu(t *testing.T) {
	gw := &fakeGateway{meErr: assert.AnError}

	app, out, sessions := newTestApp(t, gw, "q\n")

	require.NoError(t, app.Run(context.Background()))

	// silent downgrade: the auth menu appears without any error output
	assert.Equal(t, model.StateAnonymous, sessions.State())
	assert.Contains(t, out.String(), "[1] log in")
	assert.NotContains(t, out.String(), "error:")
}

func TestApp_AddHabitFlow(t *testing.T) {
	gw := &fakeGateway{user: model.User{ID: 1, Name: "Taro"}}

	script := strings.Join([]string{"a", "meditate", "10 min", "n", "q"}, "\n") + "\n"
	app, out, _ := newTestApp(t, gw, script)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), `created "meditate"`)
	require.Len(t, gw.habits, 1)
	assert.Equal(t, "meditate", gw.habits[0].Name)
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t,
		"[######--------------]  32% (10/31 days)",
		renderProgress(model.ProgressSummary{Completed: 10, WindowDays: 31, Percentage: 32}))
	assert.Equal(t,
		"[####################] 100% (31/31 days)",
		renderProgress(model.ProgressSummary{Completed: 31, WindowDays: 31, Percentage: 100}))
	assert.Equal(t,
		"(progress unavailable)",
		renderProgress(model.ProgressSummary{WindowDays: 31, Degraded: true}))
}
