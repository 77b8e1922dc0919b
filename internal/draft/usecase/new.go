package usecase

import (
	"context"
	"time"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/state"
	"line-task-tracker/internal/task/repository"
	"line-task-tracker/pkg/datemath"
	pkgLog "line-task-tracker/pkg/log"
)

// Mirror copies committed tasks to an external calendar.
type Mirror interface {
	Sync(ctx context.Context, t model.Task) error
}

type implUseCase struct {
	l        pkgLog.Logger
	users    repository.UserRepository
	tasks    repository.TaskRepository
	drafts   state.Store[draft.Draft]
	presets  state.Store[draft.Preset]
	dateMath *datemath.Parser
	mirror   Mirror
	now      func() time.Time
	newID    func(prefix string, n int) string
}

// New creates a new draft UseCase instance. mirror may be nil.
func New(
	l pkgLog.Logger,
	users repository.UserRepository,
	tasks repository.TaskRepository,
	drafts state.Store[draft.Draft],
	presets state.Store[draft.Preset],
	dateMath *datemath.Parser,
	mirror Mirror,
) draft.UseCase {
	return &implUseCase{
		l:        l,
		users:    users,
		tasks:    tasks,
		drafts:   drafts,
		presets:  presets,
		dateMath: dateMath,
		mirror:   mirror,
		now:      time.Now,
		newID:    newID,
	}
}
