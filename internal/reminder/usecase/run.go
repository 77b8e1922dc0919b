package usecase

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sourcegraph/conc/pool"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/reminder"
	"line-task-tracker/internal/task/repository"
	pkgLine "line-task-tracker/pkg/line"
)

func (uc *implUseCase) Run(ctx context.Context, job reminder.Job) (reminder.Report, error) {
	switch job {
	case reminder.JobMorning:
		return uc.MorningDigest(ctx)
	case reminder.JobEvening:
		return uc.EveningSummary(ctx)
	case reminder.JobSupervisor:
		return uc.SupervisorSummary(ctx)
	}
	return reminder.Report{}, fmt.Errorf("%w: %q", reminder.ErrUnknownJob, job)
}

func (uc *implUseCase) activeUsers(ctx context.Context) ([]model.User, error) {
	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "reminder.usecase.activeUsers: failed to list users: %v", err)
		return nil, err
	}
	var out []model.User
	for _, u := range users {
		if u.ID != "" && u.IsActive() {
			out = append(out, u)
		}
	}
	return out, nil
}

func (uc *implUseCase) tasksOf(ctx context.Context, userID string) ([]model.Task, error) {
	return uc.tasks.ListTasks(ctx, repository.ListTasksOptions{AssigneeID: userID})
}

// fanOut builds and pushes one message per user with bounded parallelism.
// build returning an empty text skips the user.
func (uc *implUseCase) fanOut(ctx context.Context, job reminder.Job, users []model.User, build func(ctx context.Context, u model.User) (pkgLine.Message, error)) reminder.Report {
	var sent, failed atomic.Int64

	p := pool.New().WithMaxGoroutines(uc.workers)
	for _, u := range users {
		p.Go(func() {
			msg, err := build(ctx, u)
			if err != nil {
				uc.l.Warnf(ctx, "reminder.usecase.%s: skipped %s: %v", job, u.ID, err)
				failed.Add(1)
				return
			}
			if msg.Type == "" {
				return
			}
			if err := uc.sender.Push(ctx, u.ID, msg); err != nil {
				uc.l.Warnf(ctx, "reminder.usecase.%s: failed to push to %s: %v", job, u.ID, err)
				failed.Add(1)
				return
			}
			sent.Add(1)
		})
	}
	p.Wait()

	r := reminder.Report{Job: job, Recipients: len(users), Sent: int(sent.Load()), Failed: int(failed.Load())}
	uc.l.Infof(ctx, "reminder.usecase.%s: sent %d of %d, %d failed", job, r.Sent, r.Recipients, r.Failed)
	return r
}
