// Package ordering holds the task sort orders used by listings and digests.
// Each view keeps its own named order.
package ordering

import (
	"slices"
	"strings"
	"time"

	"line-task-tracker/internal/model"
)

// DeadlineParser parses a stored deadline string.
type DeadlineParser interface {
	ParseStored(s string) (time.Time, bool)
}

// StatusRank is doing 0, pending 1, done 2, anything else 9.
func StatusRank(s model.Status) int {
	switch model.Status(strings.ToLower(string(s))) {
	case model.StatusDoing:
		return 0
	case model.StatusPending:
		return 1
	case model.StatusDone:
		return 2
	}
	return 9
}

// RoleRank is admin 0, supervisor 1, developer 2, user 3, anything else 9.
func RoleRank(r model.Role) int {
	switch model.Role(strings.ToLower(string(r))) {
	case model.RoleAdmin:
		return 0
	case model.RoleSupervisor:
		return 1
	case model.RoleDeveloper:
		return 2
	case model.RoleUser:
		return 3
	}
	return 9
}

// IsUrgent reports whether note or detail carries the urgent tag or word.
func IsUrgent(t model.Task) bool {
	s := strings.ToLower(t.Note + " " + t.Detail)
	return strings.Contains(s, "[urgent]") || strings.Contains(s, "ด่วน")
}

// IsOverdue reports whether t has a parsed deadline before now and is not done.
func IsOverdue(p DeadlineParser, t model.Task, now time.Time) bool {
	if strings.EqualFold(string(t.Status), string(model.StatusDone)) {
		return false
	}
	due, ok := p.ParseStored(t.Deadline)
	return ok && due.Before(now)
}

// compareDue orders parsed deadlines ascending with unparseable ones last.
func compareDue(p DeadlineParser, a, b model.Task) int {
	ta, oka := p.ParseStored(a.Deadline)
	tb, okb := p.ParseStored(b.Deadline)
	switch {
	case !oka && !okb:
		return 0
	case !oka:
		return 1
	case !okb:
		return -1
	}
	return ta.Compare(tb)
}

func compareStatus(a, b model.Task) int {
	return StatusRank(a.Status) - StatusRank(b.Status)
}

// ByStatusDue sorts by status rank, then deadline, then most recently updated.
func ByStatusDue(p DeadlineParser, tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := compareStatus(a, b); c != 0 {
			return c
		}
		if c := compareDue(p, a, b); c != 0 {
			return c
		}
		return strings.Compare(b.UpdatedAt, a.UpdatedAt)
	})
}

// ByStatusThenDue sorts by status rank, then deadline.
func ByStatusThenDue(p DeadlineParser, tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := compareStatus(a, b); c != 0 {
			return c
		}
		return compareDue(p, a, b)
	})
}

// ByDueThenStatus sorts by deadline, then status rank.
func ByDueThenStatus(p DeadlineParser, tasks []model.Task) {
	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := compareDue(p, a, b); c != 0 {
			return c
		}
		return compareStatus(a, b)
	})
}

// ByUrgency sorts the assigner's view: done tasks last, then urgent first,
// overdue first, earliest deadline, doing before pending.
func ByUrgency(p DeadlineParser, tasks []model.Task, now time.Time) {
	flag := func(b bool) int {
		if b {
			return 0
		}
		return 1
	}
	progress := func(t model.Task) int {
		switch model.Status(strings.ToLower(string(t.Status))) {
		case model.StatusDoing:
			return 0
		case model.StatusPending:
			return 1
		}
		return 2
	}

	slices.SortStableFunc(tasks, func(a, b model.Task) int {
		if c := flag(!a.IsDone()) - flag(!b.IsDone()); c != 0 {
			return c
		}
		if c := flag(IsUrgent(a)) - flag(IsUrgent(b)); c != 0 {
			return c
		}
		if c := flag(IsOverdue(p, a, now)) - flag(IsOverdue(p, b, now)); c != 0 {
			return c
		}
		if c := compareDue(p, a, b); c != 0 {
			return c
		}
		return progress(a) - progress(b)
	})
}

// OpenDueWithin keeps unfinished tasks whose deadline falls in [start, end]
// or cannot be read, ordered by deadline then status. tasks is not modified.
func OpenDueWithin(p DeadlineParser, tasks []model.Task, start, end time.Time) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.IsDone() {
			continue
		}
		due, ok := p.ParseStored(t.Deadline)
		if !ok || (!due.Before(start) && !due.After(end)) {
			out = append(out, t)
		}
	}
	ByDueThenStatus(p, out)
	return out
}

// ByRole sorts users by role rank, then display name.
func ByRole(users []model.User) {
	slices.SortStableFunc(users, func(a, b model.User) int {
		if c := RoleRank(a.Role) - RoleRank(b.Role); c != 0 {
			return c
		}
		return strings.Compare(nameOf(a), nameOf(b))
	})
}

func nameOf(u model.User) string {
	if u.RealName != "" {
		return u.RealName
	}
	return u.Username
}
