package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/snoopapp/snoop-client/internal/model"
	"github.com/snoopapp/snoop-client/internal/service"
)

// App is the terminal view layer. It renders state produced by the core
// services and forwards user intents as calls into them. After every
// successful mutation it re-fetches the habit list; the repository
// keeps no cache.
type App struct {
	sessions *service.SessionManager
	habits   *service.HabitRepository
	progress *service.ProgressAggregator
	creator  *service.HabitCreationOrchestrator
	goals    *service.GoalTracker
	window   model.Window

	in  *bufio.Scanner
	out io.Writer
}

// New creates the terminal app reading from in and writing to out.
func New(
	sessions *service.SessionManager,
	habits *service.HabitRepository,
	progress *service.ProgressAggregator,
	creator *service.HabitCreationOrchestrator,
	goals *service.GoalTracker,
	window model.Window,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		sessions: sessions,
		habits:   habits,
		progress: progress,
		creator:  creator,
		goals:    goals,
		window:   window,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run restores any persisted session and drives the main loop until the
// user quits or input ends.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "snoop habit tracker")

	if _, err := a.sessions.Restore(ctx); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}

	for {
		if ctx.Err() != nil {
			return nil
		}

		var quit bool
		if a.sessions.State() == model.StateAuthenticated {
			quit = a.dashboard(ctx)
		} else {
			quit = a.authMenu(ctx)
		}
		if quit {
			return nil
		}
	}
}

func (a *App) authMenu(ctx context.Context) (quit bool) {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "[1] log in  [2] register  [q] quit")

	switch a.prompt("> ") {
	case "1":
		a.loginFlow(ctx)
	case "2":
		a.registerFlow(ctx)
	case "q", "":
		return true
	}
	return false
}

func (a *App) loginFlow(ctx context.Context) {
	email := a.prompt("email: ")
	password := a.prompt("password: ")

	sess, err := a.sessions.Login(ctx, email, password)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "welcome back, %s\n", sess.User.Name)
}

func (a *App) registerFlow(ctx context.Context) {
	name := a.prompt("name: ")
	email := a.prompt("email: ")
	password := a.prompt("password: ")

	pending, err := a.sessions.Register(ctx, name, email, password)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "a 6-digit code was sent to %s\n", pending.Email)

	for a.sessions.State() == model.StateAwaitingVerification {
		code := a.prompt("code (empty to cancel): ")
		if code == "" {
			return
		}

		sess, err := a.sessions.Verify(ctx, pending.Email, code)
		if err != nil {
			a.printError(err)
			continue
		}

		fmt.Fprintf(a.out, "verified, welcome %s\n", sess.User.Name)
		return
	}
}

func (a *App) dashboard(ctx context.Context) (quit bool) {
	sess, err := a.sessions.Current()
	if err != nil {
		return false
	}

	habits, err := a.habits.List(ctx, sess.Token)
	if err != nil {
		a.printError(err)
		return false
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "dashboard: %s\n", sess.User.Name)
	if len(habits) == 0 {
		fmt.Fprintln(a.out, "no habits yet")
	}
	for i, habit := range habits {
		summary := a.progress.ForHabit(ctx, sess.Token, habit.ID, a.window)
		fmt.Fprintf(a.out, "%2d. %-20s %s\n", i+1, habit.Name, renderProgress(summary))
	}

	fmt.Fprintln(a.out, "[a]dd  [number] detail  [l]ogout  [q]uit")
	input := a.prompt("> ")

	switch input {
	case "a":
		a.addHabitFlow(ctx, sess.Token)
	case "l":
		a.sessions.Logout(ctx)
		fmt.Fprintln(a.out, "logged out")
	case "q", "":
		return true
	default:
		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(habits) {
			return false
		}
		a.detail(ctx, sess.Token, habits[idx-1])
	}
	return false
}

func (a *App) addHabitFlow(ctx context.Context, token string) {
	params := service.CreateParams{
		Name:        a.prompt("habit name: "),
		Description: a.prompt("description (optional): "),
	}

	if strings.EqualFold(a.prompt("enable a reminder? [y/N]: "), "y") {
		params.NotifyEnabled = true
		params.NotifyTime = a.prompt("reminder time (HH:MM): ")
	}

	habit, warning, err := a.creator.Create(ctx, token, params)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "created %q\n", habit.Name)
	if warning != nil {
		fmt.Fprintf(a.out, "warning: %s\n", warning.Message)
	}
}

func (a *App) detail(ctx context.Context, token string, habit model.Habit) {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "%s: %s\n", habit.Name, orPlaceholder(habit.Description))
		fmt.Fprintln(a.out, "[e]dit  [d]elete  [c]heck in today  [g]oals  [n]ew goal  [b]ack")

		switch a.prompt("> ") {
		case "e":
			updated, ok := a.editFlow(ctx, token, habit)
			if ok {
				habit = updated
			}
		case "d":
			if a.deleteFlow(ctx, token, habit) {
				return
			}
		case "c":
			a.checkInFlow(ctx, token, habit)
		case "g":
			a.listGoals(ctx, token, habit)
		case "n":
			a.newGoalFlow(ctx, token, habit)
		case "b", "":
			return
		}
	}
}

func (a *App) editFlow(ctx context.Context, token string, habit model.Habit) (model.Habit, bool) {
	name := a.prompt(fmt.Sprintf("name [%s]: ", habit.Name))
	if name == "" {
		name = habit.Name
	}
	description := a.prompt(fmt.Sprintf("description [%s]: ", orPlaceholder(habit.Description)))
	if description == "" {
		description = habit.Description
	}

	updated, err := a.habits.Update(ctx, token, habit.ID, name, description)
	if err != nil {
		a.printError(err)
		return model.Habit{}, false
	}

	fmt.Fprintln(a.out, "saved")
	return updated, true
}

func (a *App) deleteFlow(ctx context.Context, token string, habit model.Habit) bool {
	answer := a.prompt(fmt.Sprintf("delete %q? this cannot be undone [y/N]: ", habit.Name))
	if !strings.EqualFold(answer, "y") {
		return false
	}

	if err := a.habits.Delete(ctx, token, habit.ID); err != nil {
		a.printError(err)
		return false
	}

	fmt.Fprintln(a.out, "deleted")
	return true
}

func (a *App) checkInFlow(ctx context.Context, token string, habit model.Habit) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	if _, err := a.habits.CheckIn(ctx, token, habit.ID, today, true); err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "checked in for %s\n", today.Format("2006-01-02"))
}

func (a *App) listGoals(ctx context.Context, token string, habit model.Habit) {
	goals, err := a.goals.List(ctx, token, habit.ID)
	if err != nil {
		a.printError(err)
		return
	}

	if len(goals) == 0 {
		fmt.Fprintln(a.out, "no goals")
		return
	}
	for _, goal := range goals {
		mark := " "
		if goal.Achieved {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %d/%d between %s and %s\n",
			mark, goal.CurrentCount, goal.TargetCount,
			goal.StartDate.Format("2006-01-02"), goal.EndDate.Format("2006-01-02"))
	}
}

func (a *App) newGoalFlow(ctx context.Context, token string, habit model.Habit) {
	target, err := strconv.Atoi(a.prompt("target count: "))
	if err != nil {
		fmt.Fprintln(a.out, "error: target must be a number")
		return
	}

	goal, err := a.goals.Create(ctx, token, habit.ID, target, a.window)
	if err != nil {
		a.printError(err)
		return
	}

	fmt.Fprintf(a.out, "goal set: %d completions by %s\n", goal.TargetCount, goal.EndDate.Format("2006-01-02"))
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) printError(err error) {
	fmt.Fprintf(a.out, "error: %s\n", err.Error())
}

func renderProgress(s model.ProgressSummary) string {
	if s.Degraded {
		return "(progress unavailable)"
	}

	const width = 20
	filled := s.Percentage * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)

	return fmt.Sprintf("[%s] %3d%% (%d/%d days)", bar, s.Percentage, s.Completed, s.WindowDays)
}

func orPlaceholder(description string) string {
	if description == "" {
		return "(no description)"
	}
	return description
}
