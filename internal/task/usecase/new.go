package usecase

import (
	"context"
	"time"

	"line-task-tracker/internal/model"
	"line-task-tracker/internal/task"
	"line-task-tracker/internal/task/repository"
	"line-task-tracker/pkg/datemath"
	pkgLog "line-task-tracker/pkg/log"
)

// Mirror copies task changes to an external calendar.
type Mirror interface {
	Sync(ctx context.Context, t model.Task) error
}

type implUseCase struct {
	l        pkgLog.Logger
	tasks    repository.TaskRepository
	users    repository.UserRepository
	dateMath *datemath.Parser
	mirror   Mirror
	now      func() time.Time
}

// New creates a new task UseCase instance. mirror may be nil.
func New(
	l pkgLog.Logger,
	tasks repository.TaskRepository,
	users repository.UserRepository,
	dateMath *datemath.Parser,
	mirror Mirror,
) task.UseCase {
	return &implUseCase{
		l:        l,
		tasks:    tasks,
		users:    users,
		dateMath: dateMath,
		mirror:   mirror,
		now:      time.Now,
	}
}
