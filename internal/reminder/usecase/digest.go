package usecase

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/sourcegraph/conc/iter"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/ordering"
	"line-task-tracker/internal/reminder"
	pkgLine "line-task-tracker/pkg/line"
)

const (
	morningMaxLines    = 25
	supervisorMaxLines = 50
)

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (uc *implUseCase) MorningDigest(ctx context.Context) (reminder.Report, error) {
	users, err := uc.activeUsers(ctx)
	if err != nil {
		return reminder.Report{}, err
	}

	start := uc.dateMath.StartOfDay(uc.now())
	end := uc.dateMath.EndOfDay(start)
	return uc.fanOut(ctx, reminder.JobMorning, users, func(ctx context.Context, u model.User) (pkgLine.Message, error) {
		tasks, err := uc.tasksOf(ctx, u.ID)
		if err != nil {
			return pkgLine.Message{}, err
		}
		return pkgLine.NewText(morningText(ordering.OpenDueWithin(uc.dateMath, tasks, start, end))), nil
	}), nil
}

func morningText(tasks []model.Task) string {
	if len(tasks) == 0 {
		return "สวัสดีตอนเช้า 🌤️ วันนี้ไม่มีงานคงค้าง 🎉"
	}
	lines := []string{"สวัสดีตอนเช้า 🌤️", "งานวันนี้/คงค้างของคุณ:"}
	for i, t := range tasks {
		if i == morningMaxLines {
			break
		}
		line := fmt.Sprintf("• #%s %s", t.ShortID(), clip(t.Detail, 70))
		if t.Deadline != "" {
			line += fmt.Sprintf(" (กำหนด %s)", t.Deadline)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (uc *implUseCase) EveningSummary(ctx context.Context) (reminder.Report, error) {
	users, err := uc.activeUsers(ctx)
	if err != nil {
		return reminder.Report{}, err
	}

	return uc.fanOut(ctx, reminder.JobEvening, users, func(ctx context.Context, u model.User) (pkgLine.Message, error) {
		tasks, err := uc.tasksOf(ctx, u.ID)
		if err != nil {
			return pkgLine.Message{}, err
		}
		var done int
		for _, t := range tasks {
			if t.IsDone() {
				done++
			}
		}
		return pkgLine.NewText(fmt.Sprintf("สรุปวันนี้ ⏱️\nเสร็จแล้ว: %d\nคงค้าง: %d", done, len(tasks)-done)), nil
	}), nil
}

func (uc *implUseCase) SupervisorSummary(ctx context.Context) (reminder.Report, error) {
	users, err := uc.activeUsers(ctx)
	if err != nil {
		return reminder.Report{}, err
	}

	now := uc.now()
	stats := iter.Mapper[model.User, reminder.UserStats]{MaxGoroutines: uc.workers}.Map(users, func(u *model.User) reminder.UserStats {
		tasks, err := uc.tasksOf(ctx, u.ID)
		if err != nil {
			uc.l.Warnf(ctx, "reminder.usecase.SupervisorSummary: failed to list tasks of %s: %v", u.ID, err)
		}
		return uc.statsFor(*u, tasks, now)
	})
	text := supervisorText(stats)

	var managers []model.User
	for _, u := range users {
		if u.Role.IsManager() {
			managers = append(managers, u)
		}
	}

	msg := pkgLine.NewText(text)
	if uc.exportURL != "" {
		msg = msg.WithQuickReply(pkgLine.URIAction("ส่งไฟล์ CSV", uc.exportURL))
	}
	return uc.fanOut(ctx, reminder.JobSupervisor, managers, func(context.Context, model.User) (pkgLine.Message, error) {
		return msg, nil
	}), nil
}

// statsFor counts tasks created today, finished today and overdue.
func (uc *implUseCase) statsFor(u model.User, tasks []model.Task, now time.Time) reminder.UserStats {
	start := uc.dateMath.StartOfDay(now)
	end := uc.dateMath.EndOfDay(start)
	today := func(s string) bool {
		ts, ok := uc.dateMath.ParseStored(s)
		return ok && !ts.Before(start) && !ts.After(end)
	}

	name := u.RealName
	if name == "" {
		name = u.Username
	}
	s := reminder.UserStats{Name: name, Role: u.Role.Label()}
	if s.Name == "" {
		s.Name = "-"
	}
	for _, t := range tasks {
		if today(t.CreatedAt) {
			s.NewToday++
		}
		if t.IsDone() && today(t.UpdatedAt) {
			s.DoneToday++
		}
		if ordering.IsOverdue(uc.dateMath, t, now) {
			s.Overdue++
		}
	}
	return s
}

// supervisorText lists the busiest users first: most overdue, then most
// new, then most done.
func supervisorText(stats []reminder.UserStats) string {
	stats = slices.Clone(stats)
	slices.SortStableFunc(stats, func(a, b reminder.UserStats) int {
		if a.Overdue != b.Overdue {
			return b.Overdue - a.Overdue
		}
		if a.NewToday != b.NewToday {
			return b.NewToday - a.NewToday
		}
		return b.DoneToday - a.DoneToday
	})

	lines := []string{"สรุปวันนี้สำหรับหัวหน้า/แอดมิน", "— งานใหม่วันนี้ | เสร็จวันนี้ | เลยเดดไลน์ —"}
	for i, s := range stats {
		if i == supervisorMaxLines {
			break
		}
		lines = append(lines, fmt.Sprintf("• %s (%s): %d | %d | %d", s.Name, s.Role, s.NewToday, s.DoneToday, s.Overdue))
	}
	return strings.Join(lines, "\n")
}

// ExportURL builds the key-guarded CSV link sent to managers.
func ExportURL(publicURL, key string) string {
	if publicURL == "" {
		return ""
	}
	return strings.TrimRight(publicURL, "/") + "/api/tasks/export?k=" + url.QueryEscape(key)
}
