package usecase

import (
	"context"
	"time"

	"line-task-tracker/internal/reminder"
	"line-task-tracker/internal/task/repository"
	"line-task-tracker/pkg/datemath"
	pkgLine "line-task-tracker/pkg/line"
	pkgLog "line-task-tracker/pkg/log"
)

const defaultConcurrency = 4

// Sender pushes messages to a user.
type Sender interface {
	Push(ctx context.Context, to string, messages ...pkgLine.Message) error
}

// Config configures the digest jobs.
type Config struct {
	// ExportURL is linked from the supervisor summary; empty hides the link.
	ExportURL string
	// Concurrency bounds parallel store reads and pushes.
	Concurrency int
}

type implUseCase struct {
	l         pkgLog.Logger
	tasks     repository.TaskRepository
	users     repository.UserRepository
	sender    Sender
	dateMath  *datemath.Parser
	exportURL string
	workers   int
	now       func() time.Time
}

func New(
	l pkgLog.Logger,
	tasks repository.TaskRepository,
	users repository.UserRepository,
	sender Sender,
	dateMath *datemath.Parser,
	cfg Config,
) reminder.UseCase {
	workers := cfg.Concurrency
	if workers <= 0 {
		workers = defaultConcurrency
	}
	return &implUseCase{
		l:         l,
		tasks:     tasks,
		users:     users,
		sender:    sender,
		dateMath:  dateMath,
		exportURL: cfg.ExportURL,
		workers:   workers,
		now:       time.Now,
	}
}
