package usecase

import (
	"context"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
)

// Remind checks the sender may nudge the assignee. Nothing is written.
func (uc *implUseCase) Remind(ctx context.Context, sc model.Scope, input command.Remind) (task.RemindOutput, error) {
	t, err := uc.getTask(ctx, input.TaskID)
	if err != nil {
		return task.RemindOutput{}, err
	}
	if err := assignerOnly(sc, t); err != nil {
		return task.RemindOutput{}, err
	}
	if t.AssigneeID == "" {
		return task.RemindOutput{}, task.ErrNoAssigneeID
	}
	return task.RemindOutput{Task: t, Actor: uc.actorName(ctx, sc)}, nil
}
