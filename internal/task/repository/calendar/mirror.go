package calendar

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"line-task-tracker/internal/model"
	"line-task-tracker/pkg/datemath"
	"line-task-tracker/pkg/gcalendar"
	pkgLog "line-task-tracker/pkg/log"
)

const defaultDuration = 30 * time.Minute

// EventWriter is the part of the Google Calendar client the mirror needs.
type EventWriter interface {
	UpsertEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
}

// Options configures a Mirror.
type Options struct {
	CalendarID string
	Timezone   string
	Duration   time.Duration
}

// Mirror keeps one calendar event per task with a parseable deadline.
type Mirror struct {
	l        pkgLog.Logger
	writer   EventWriter
	dates    *datemath.Parser
	calendar string
	timezone string
	duration time.Duration
}

// NewMirror creates a calendar mirror.
func NewMirror(l pkgLog.Logger, writer EventWriter, dates *datemath.Parser, opt Options) *Mirror {
	if opt.Duration <= 0 {
		opt.Duration = defaultDuration
	}
	if opt.Timezone == "" {
		opt.Timezone = dates.Location().String()
	}
	return &Mirror{
		l:        l,
		writer:   writer,
		dates:    dates,
		calendar: opt.CalendarID,
		timezone: opt.Timezone,
		duration: opt.Duration,
	}
}

// Sync writes the task's event, starting at its deadline. Tasks whose
// deadline cannot be parsed are skipped.
func (m *Mirror) Sync(ctx context.Context, t model.Task) error {
	start, ok := m.dates.ParseStored(t.Deadline)
	if !ok {
		m.l.Debugf(ctx, "calendar.Mirror.Sync: skip %s, deadline %q not parseable", t.ID, t.Deadline)
		return nil
	}

	ev, err := m.writer.UpsertEvent(ctx, gcalendar.EventRequest{
		CalendarID:  m.calendar,
		ID:          EventID(t.ID),
		Summary:     fmt.Sprintf("[%s] %s", t.ID, t.Detail),
		Description: describe(t),
		StartTime:   start,
		EndTime:     start.Add(m.duration),
		Timezone:    m.timezone,
	})
	if err != nil {
		return fmt.Errorf("calendar.Mirror.Sync %s: %w", t.ID, err)
	}
	m.l.Debugf(ctx, "calendar.Mirror.Sync: %s -> %s", t.ID, ev.HtmlLink)
	return nil
}

// EventID derives a stable event id from a task id. Calendar ids only allow
// base32hex characters, which hex output always satisfies.
func EventID(taskID string) string {
	return "task" + hex.EncodeToString([]byte(strings.ToLower(taskID)))
}

func describe(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ผู้รับ: %s\n", orDash(t.AssigneeName))
	fmt.Fprintf(&b, "ผู้สั่ง: %s\n", orDash(t.AssignerName))
	fmt.Fprintf(&b, "สถานะ: %s", model.NormalizeStatus(string(t.Status)))
	if t.Note != "" {
		fmt.Fprintf(&b, "\nหมายเหตุ: %s", t.Note)
	}
	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
