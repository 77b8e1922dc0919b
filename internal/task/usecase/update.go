package usecase

import (
	"context"
	"strings"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
)

func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, input command.SetStatus) (task.UpdateOutput, error) {
	status := model.NormalizeStatus(string(input.Status))
	before, after, err := uc.merge(ctx, sc, input.TaskID, partyOnly, func(t *model.Task) {
		t.Status = status
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}

	uc.l.Infof(ctx, "task.usecase.UpdateStatus: %s %s -> %s by %s", after.ID, before.Status, after.Status, sc.UserID)
	return task.UpdateOutput{
		Task:     after,
		Previous: before,
		Actor:    uc.actorName(ctx, sc),
		NotifyID: before.Counterparty(sc.UserID),
	}, nil
}

// AddNote appends to the existing note with " | " between entries.
func (uc *implUseCase) AddNote(ctx context.Context, sc model.Scope, input command.AddNote) (task.UpdateOutput, error) {
	before, after, err := uc.merge(ctx, sc, input.TaskID, partyOnly, func(t *model.Task) {
		t.Note = joinNote(t.Note, input.Note)
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}

	return task.UpdateOutput{
		Task:     after,
		Previous: before,
		Actor:    uc.actorName(ctx, sc),
		NotifyID: before.Counterparty(sc.UserID),
	}, nil
}

// SetDeadline stores the resolved deadline, or the phrase as typed when it
// could not be resolved.
func (uc *implUseCase) SetDeadline(ctx context.Context, sc model.Scope, input command.SetDeadline) (task.UpdateOutput, error) {
	deadline := strings.TrimSpace(input.Deadline)
	if deadline == "" {
		deadline = uc.dateMath.ResolveString(input.DeadlinePhrase, uc.now())
	}

	before, after, err := uc.merge(ctx, sc, input.TaskID, assignerOnly, func(t *model.Task) {
		t.Deadline = deadline
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}
	uc.syncMirror(ctx, after)

	return task.UpdateOutput{
		Task:     after,
		Previous: before,
		Actor:    uc.actorName(ctx, sc),
		NotifyID: after.AssigneeID,
	}, nil
}

func (uc *implUseCase) EditDetail(ctx context.Context, sc model.Scope, input command.EditDetail) (task.UpdateOutput, error) {
	before, after, err := uc.merge(ctx, sc, input.TaskID, assignerOnly, func(t *model.Task) {
		t.Detail = strings.TrimSpace(input.Detail)
	})
	if err != nil {
		return task.UpdateOutput{}, err
	}
	uc.syncMirror(ctx, after)

	return task.UpdateOutput{
		Task:     after,
		Previous: before,
		Actor:    uc.actorName(ctx, sc),
		NotifyID: after.AssigneeID,
	}, nil
}

func joinNote(cur, add string) string {
	cur = strings.TrimSpace(cur)
	add = strings.TrimSpace(add)
	switch {
	case cur == "":
		return add
	case add == "":
		return cur
	}
	return cur + " | " + add
}
