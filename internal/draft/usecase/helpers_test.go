package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/state"
	"line-task-tracker/internal/task/repository"
	"line-task-tracker/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type mockUsers struct {
	users  []model.User
	err    error
	onList func()
}

func (m *mockUsers) GetUser(ctx context.Context, id string) (model.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (m *mockUsers) UpsertUser(ctx context.Context, u model.User) error { return nil }

func (m *mockUsers) ListUsers(ctx context.Context) ([]model.User, error) {
	if m.onList != nil {
		m.onList()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

type mockTasks struct {
	mu      sync.Mutex
	written []model.Task
	err     error
	delay   time.Duration
}

func (m *mockTasks) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, repository.ErrNotFound
}

func (m *mockTasks) UpsertTask(ctx context.Context, t model.Task) error {
	if m.delay > 0 {
		time.Sleep(m.delay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.written = append(m.written, t)
	return nil
}

func (m *mockTasks) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return nil, nil
}

func (m *mockTasks) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.written)
}

type mockMirror struct {
	synced []string
}

func (m *mockMirror) Sync(ctx context.Context, t model.Task) error {
	m.synced = append(m.synced, t.ID)
	return errors.New("calendar unavailable")
}

type fixture struct {
	uc     *implUseCase
	users  *mockUsers
	tasks  *mockTasks
	mirror *mockMirror
	now    time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Bangkok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	users := &mockUsers{users: []model.User{
		{ID: "U_boss", Username: "boss", RealName: "หัวหน้าใหญ่", Role: model.RoleSupervisor},
		{ID: "U_po", Username: "po", RealName: "ปอ อนุชา"},
		{ID: "U_pond", Username: "pond", RealName: "ปอนด์"},
	}}
	tasks := &mockTasks{}
	mirror := &mockMirror{}

	uc := New(
		&mockLogger{},
		users,
		tasks,
		state.NewMemory[draft.Draft](state.Options{}),
		state.NewMemory[draft.Preset](state.Options{}),
		dates,
		mirror,
	).(*implUseCase)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, dates.Location())
	uc.now = func() time.Time { return now }
	var seq int
	var mu sync.Mutex
	uc.newID = func(prefix string, n int) string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("%s%0*d", prefix, n, seq)
	}
	return &fixture{uc: uc, users: users, tasks: tasks, mirror: mirror, now: now}
}
