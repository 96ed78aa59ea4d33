package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/snoopapp/snoop-client/internal/model"
)

// MockGateway mocks the Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Register(ctx context.Context, name, email, password string) (model.User, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockGateway) Verify(ctx context.Context, email, code string) (string, error) {
	args := m.Called(ctx, email, code)
	return args.String(0), args.Error(1)
}

func (m *MockGateway) Me(ctx context.Context, token string) (model.User, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockGateway) ListHabits(ctx context.Context, token string) ([]model.Habit, error) {
	args := m.Called(ctx, token)
	return args.Get(0).([]model.Habit), args.Error(1)
}

func (m *MockGateway) CreateHabit(ctx context.Context, token, name, description string) (model.Habit, error) {
	args := m.Called(ctx, token, name, description)
	return args.Get(0).(model.Habit), args.Error(1)
}

func (m *MockGateway) UpdateHabit(ctx context.Context, token string, id int64, name, description string) (model.Habit, error) {
	args := m.Called(ctx, token, id, name, description)
	return args.Get(0).(model.Habit), args.Error(1)
}

func (m *MockGateway) DeleteHabit(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockGateway) ListRecords(ctx context.Context, token string, habitID int64, window model.Window) ([]model.HabitRecord, error) {
	args := m.Called(ctx, token, habitID, window)
	return args.Get(0).([]model.HabitRecord), args.Error(1)
}

func (m *MockGateway) CreateRecord(ctx context.Context, token string, habitID int64, date time.Time, status bool) (model.HabitRecord, error) {
	args := m.Called(ctx, token, habitID, date, status)
	return args.Get(0).(model.HabitRecord), args.Error(1)
}

func (m *MockGateway) CreateNotification(ctx context.Context, token string, habitID int64, timeOfDay string) (model.Notification, error) {
	args := m.Called(ctx, token, habitID, timeOfDay)
	return args.Get(0).(model.Notification), args.Error(1)
}

func (m *MockGateway) ListGoals(ctx context.Context, token string, habitID int64) ([]model.Goal, error) {
	args := m.Called(ctx, token, habitID)
	return args.Get(0).([]model.Goal), args.Error(1)
}

func (m *MockGateway) CreateGoal(ctx context.Context, token string, habitID int64, targetCount int, window model.Window) (model.Goal, error) {
	args := m.Called(ctx, token, habitID, targetCount, window)
	return args.Get(0).(model.Goal), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockSessionStore) Set(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTokenInspector mocks the TokenInspector interface
type MockTokenInspector struct {
	mock.Mock
}

func (m *MockTokenInspector) Expired(token string) bool {
	args := m.Called(token)
	return args.Bool(0)
}
