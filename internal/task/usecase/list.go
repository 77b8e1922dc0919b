package usecase

import (
	"context"
	"time"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/ordering"
	"line-task-tracker/internal/task"
	"line-task-tracker/internal/task/repository"
)

const rangeLayout = "02/01/2006"

// ListPending returns the sender's open tasks, doing first.
func (uc *implUseCase) ListPending(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.list(ctx, repository.ListTasksOptions{AssigneeID: sc.UserID})
	if err != nil {
		return nil, err
	}
	open := tasks[:0]
	for _, t := range tasks {
		if s := model.NormalizeStatus(string(t.Status)); s == model.StatusPending || s == model.StatusDoing {
			open = append(open, t)
		}
	}
	ordering.ByStatusDue(uc.dateMath, open)
	return open, nil
}

// ListAssigned returns every task the sender assigned, most pressing first.
func (uc *implUseCase) ListAssigned(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.list(ctx, repository.ListTasksOptions{AssignerID: sc.UserID})
	if err != nil {
		return nil, err
	}
	ordering.ByUrgency(uc.dateMath, tasks, uc.now())
	return tasks, nil
}

// ListToday returns the sender's unfinished tasks due today or without a
// readable deadline.
func (uc *implUseCase) ListToday(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.list(ctx, repository.ListTasksOptions{AssigneeID: sc.UserID})
	if err != nil {
		return nil, err
	}
	start := uc.dateMath.StartOfDay(uc.now())
	return ordering.OpenDueWithin(uc.dateMath, tasks, start, uc.dateMath.EndOfDay(start)), nil
}

// ListRange returns the sender's tasks updated between two DD/MM/YYYY days,
// both inclusive.
func (uc *implUseCase) ListRange(ctx context.Context, sc model.Scope, input command.ListRange) ([]model.Task, error) {
	loc := uc.dateMath.Location()
	from, err := time.ParseInLocation(rangeLayout, input.From, loc)
	if err != nil {
		return nil, task.ErrInvalidRange
	}
	to, err := time.ParseInLocation(rangeLayout, input.To, loc)
	if err != nil || to.Before(from) {
		return nil, task.ErrInvalidRange
	}

	tasks, err := uc.list(ctx, repository.ListTasksOptions{
		AssigneeID: sc.UserID,
		From:       from.Format(time.RFC3339),
		To:         uc.dateMath.EndOfDay(to).Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	ordering.ByStatusThenDue(uc.dateMath, tasks)
	return tasks, nil
}

// ListUsers returns every registered user ordered by role then name.
func (uc *implUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ListUsers: %v", err)
		return nil, err
	}
	ordering.ByRole(users)
	return users, nil
}

func (uc *implUseCase) Export(ctx context.Context, input task.ExportInput) ([]model.Task, error) {
	opt := repository.ListTasksOptions{
		AssigneeID: input.AssigneeID,
		From:       input.From,
		To:         input.To,
	}
	if opt.AssigneeID == "" {
		opt.AssigneeName = input.AssigneeName
	}
	return uc.list(ctx, opt)
}

func (uc *implUseCase) list(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks, err := uc.tasks.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.list: %+v: %v", opt, err)
		return nil, err
	}
	return tasks, nil
}
