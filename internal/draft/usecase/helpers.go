package usecase

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
)

// newID returns prefix followed by the last n characters of a fresh ULID,
// which come from its random part.
func newID(prefix string, n int) string {
	id := ulid.Make().String()
	return prefix + id[len(id)-n:]
}

// applyPreset fills the assignment from the user's preset: urgent adds the
// tag when missing, Due fills an empty deadline.
func applyPreset(in command.Assign, p draft.Preset) command.Assign {
	if p.Urgent && !strings.Contains(strings.ToUpper(in.Note), command.UrgentTag) {
		in.Note = strings.TrimSpace(command.UrgentTag + " " + in.Note)
	}
	if p.Due != "" && in.Deadline == "" {
		in.Deadline = p.Due
		in.DeadlinePhrase = p.Due
	}
	return in
}

// displayName is the name recorded for the acting user: the registered
// username, then real name, then the chat profile name.
func (uc *implUseCase) displayName(ctx context.Context, sc model.Scope) string {
	u, err := uc.users.GetUser(ctx, sc.UserID)
	if err == nil {
		if n := u.DisplayName(); n != "" {
			return n
		}
	}
	if sc.DisplayName != "" {
		return sc.DisplayName
	}
	return "Unknown"
}

func matchID(id string) func(draft.Draft) bool {
	return func(d draft.Draft) bool {
		return id == "" || d.ID == id
	}
}
