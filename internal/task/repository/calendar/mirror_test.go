package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task/repository/calendar"
	"line-task-tracker/pkg/datemath"
	"line-task-tracker/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockWriter struct {
	reqs []gcalendar.EventRequest
	err  error
}

func (m *mockWriter) UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: req.ID, HtmlLink: "https://calendar.google.com/x"}, nil
}

func newMirror(t *testing.T, w *mockWriter) *calendar.Mirror {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Bangkok")
	require.NoError(t, err)
	return calendar.NewMirror(&mockLogger{}, w, dates, calendar.Options{CalendarID: "team"})
}

func TestMirror_Sync(t *testing.T) {
	w := &mockWriter{}
	m := newMirror(t, w)

	task := model.Task{
		ID:           "TASK_ab12",
		Detail:       "ทำป้าย",
		AssigneeName: "ปอ",
		Status:       model.StatusDoing,
		Deadline:     "2024-05-02T09:00:00",
		Note:         "[URGENT]",
	}
	require.NoError(t, m.Sync(context.Background(), task))
	require.Len(t, w.reqs, 1)

	req := w.reqs[0]
	assert.Equal(t, "team", req.CalendarID)
	assert.Equal(t, "task7461736b5f61623132", req.ID)
	assert.Equal(t, "[TASK_ab12] ทำป้าย", req.Summary)
	assert.Equal(t, "ผู้รับ: ปอ\nผู้สั่ง: -\nสถานะ: doing\nหมายเหตุ: [URGENT]", req.Description)
	assert.Equal(t, "Asia/Bangkok", req.Timezone)
	assert.Equal(t, 30*time.Minute, req.EndTime.Sub(req.StartTime))
	assert.Equal(t, 9, req.StartTime.Hour())
}

func TestMirror_SkipsUnparseableDeadline(t *testing.T) {
	w := &mockWriter{}
	m := newMirror(t, w)

	require.NoError(t, m.Sync(context.Background(), model.Task{ID: "TASK_1", Deadline: "สิ้นเดือน"}))
	assert.Empty(t, w.reqs)
}

func TestMirror_WriteFailure(t *testing.T) {
	w := &mockWriter{err: errors.New("quota")}
	m := newMirror(t, w)

	err := m.Sync(context.Background(), model.Task{ID: "TASK_1", Deadline: "01/05/2024 13:00"})
	assert.ErrorContains(t, err, "quota")
}

func TestEventID(t *testing.T) {
	assert.Equal(t, calendar.EventID("task_ab12"), calendar.EventID("TASK_AB12"))
	for _, r := range calendar.EventID("TASK_zZ9") {
		assert.True(t, (r >= 'a' && r <= 'v') || (r >= '0' && r <= '9'), "rune %q", r)
	}
}
