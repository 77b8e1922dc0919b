package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"line-task-tracker/internal/model"
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

// memoryRepo is an in-memory task and user sheet.
type memoryRepo struct {
	mu       sync.Mutex
	tasks    map[string]model.Task
	users    map[string]model.User
	writes   int
	writeErr error
	lastOpt  repository.ListTasksOptions
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{tasks: map[string]model.Task{}, users: map[string]model.User{}}
}

func (m *memoryRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrNotFound
	}
	return t, nil
}

func (m *memoryRepo) UpsertTask(ctx context.Context, t model.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	m.tasks[t.ID] = t
	return nil
}

func (m *memoryRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastOpt = opt
	var out []model.Task
	for _, t := range m.tasks {
		if opt.AssigneeID != "" && t.AssigneeID != opt.AssigneeID {
			continue
		}
		if opt.AssignerID != "" && t.AssignerID != opt.AssignerID {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *memoryRepo) GetUser(ctx context.Context, id string) (model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (m *memoryRepo) UpsertUser(ctx context.Context, u model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *memoryRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

type mockMirror struct {
	synced []model.Task
}

func (m *mockMirror) Sync(ctx context.Context, t model.Task) error {
	m.synced = append(m.synced, t)
	return errors.New("calendar unavailable")
}

var errSheet = errors.New("sheet locked")

func newTestUseCase(t *testing.T) (*implUseCase, *memoryRepo, *mockMirror) {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Bangkok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := newMemoryRepo()
	repo.users["U_boss"] = model.User{ID: "U_boss", Username: "boss", RealName: "หัวหน้า", Role: model.RoleSupervisor}
	repo.users["U_po"] = model.User{ID: "U_po", Username: "po", RealName: "ปอ อนุชา"}
	repo.users["U_mint"] = model.User{ID: "U_mint", Username: "mint", RealName: "มิ้นท์", Role: model.RoleDeveloper}
	repo.tasks["TASK_1"] = model.Task{
		ID:           "TASK_1",
		AssignerID:   "U_boss",
		AssignerName: "boss",
		AssigneeID:   "U_po",
		AssigneeName: "po",
		Detail:       "ส่งรายงาน",
		Status:       model.StatusPending,
		CreatedAt:    "2024-04-30T02:00:00Z",
		UpdatedAt:    "2024-04-30T02:00:00Z",
		Deadline:     "2024-05-02T09:00:00",
		Note:         "[URGENT]",
	}

	mirror := &mockMirror{}
	uc := New(&mockLogger{}, repo, repo, dates, mirror).(*implUseCase)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, dates.Location())
	uc.now = func() time.Time { return now }
	return uc, repo, mirror
}

func taskIDs(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
