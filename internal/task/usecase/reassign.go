package usecase

import (
	"context"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
)

// Reassign moves the task to another registered user. An unknown or
// ambiguous name writes nothing.
func (uc *implUseCase) Reassign(ctx context.Context, sc model.Scope, input command.Reassign) (task.ReassignOutput, error) {
	current, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.ReassignOutput{}, err
	}
	if err := assignerOnly(sc, current); err != nil {
		return task.ReassignOutput{}, err
	}

	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Reassign: failed to list users: %v", err)
		return task.ReassignOutput{}, err
	}
	assignee, err := draft.ResolveAssignee(users, input.AssigneeRef)
	if err != nil {
		return task.ReassignOutput{}, err
	}

	name := assignee.DisplayName()
	if name == "" {
		name = input.AssigneeRef
	}
	before, after, err := uc.merge(ctx, sc, input.TaskID, assignerOnly, func(t *model.Task) {
		t.AssigneeID = assignee.ID
		t.AssigneeName = name
	})
	if err != nil {
		return task.ReassignOutput{}, err
	}
	uc.syncMirror(ctx, after)

	out := task.ReassignOutput{
		Task:     after,
		Previous: before,
		Actor:    uc.actorName(ctx, sc),
		Assignee: assignee,
	}
	if before.AssigneeID != "" && before.AssigneeID != assignee.ID {
		out.PreviousAssigneeID = before.AssigneeID
	}

	uc.l.Infof(ctx, "task.usecase.Reassign: %s %s -> %s", after.ID, before.AssigneeID, after.AssigneeID)
	return out, nil
}
