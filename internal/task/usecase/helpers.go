package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
	"line-task-tracker/internal/task/repository"
)

// guard rejects a mutation before anything is written.
type guard func(sc model.Scope, t model.Task) error

func assignerOnly(sc model.Scope, t model.Task) error {
	if t.AssignerID != sc.UserID {
		return task.ErrAssignerOnly
	}
	return nil
}

func partyOnly(sc model.Scope, t model.Task) error {
	if !t.IsParty(sc.UserID) {
		return task.ErrNotParty
	}
	return nil
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.tasks.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.getTask: failed to read %s: %v", id, err)
		return model.Task{}, err
	}
	return t, nil
}

// merge reads the task, checks g, applies mutate to a copy and writes the
// whole record back with a fresh UpdatedAt.
func (uc *implUseCase) merge(ctx context.Context, sc model.Scope, id string, g guard, mutate func(*model.Task)) (before, after model.Task, err error) {
	before, err = uc.getTask(ctx, id)
	if err != nil {
		return model.Task{}, model.Task{}, err
	}
	if err := g(sc, before); err != nil {
		return model.Task{}, model.Task{}, err
	}

	after = before
	if after.Status == "" {
		after.Status = model.StatusPending
	}
	if after.CreatedAt == "" {
		after.CreatedAt = uc.stamp()
	}
	mutate(&after)
	after.UpdatedAt = uc.stamp()

	if err := uc.tasks.UpsertTask(ctx, after); err != nil {
		uc.l.Errorf(ctx, "task.usecase.merge: failed to write %s: %v", id, err)
		return model.Task{}, model.Task{}, fmt.Errorf("%w: %w", task.ErrStoreFailure, err)
	}
	return before, after, nil
}

func (uc *implUseCase) stamp() string {
	return uc.now().UTC().Format(time.RFC3339)
}

// actorName is the name shown to others for the sender: the registered
// username, then real name, then the chat profile name.
func (uc *implUseCase) actorName(ctx context.Context, sc model.Scope) string {
	if u, err := uc.users.GetUser(ctx, sc.UserID); err == nil {
		if n := u.DisplayName(); n != "" {
			return n
		}
	}
	if sc.DisplayName != "" {
		return sc.DisplayName
	}
	return "Unknown"
}

func (uc *implUseCase) syncMirror(ctx context.Context, t model.Task) {
	if uc.mirror == nil || t.Deadline == "" {
		return
	}
	if err := uc.mirror.Sync(ctx, t); err != nil {
		uc.l.Warnf(ctx, "task.usecase.syncMirror: calendar mirror failed for %s: %v", t.ID, err)
	}
}
