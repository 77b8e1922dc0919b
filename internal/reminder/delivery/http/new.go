package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"line-task-tracker/internal/reminder"
	"line-task-tracker/internal/task"
	pkgLog "line-task-tracker/pkg/log"
)

const defaultJobTimeout = 5 * time.Minute

// Handler serves the scheduler trigger and the CSV export.
type Handler interface {
	RunJob(c *gin.Context)
	ExportTasks(c *gin.Context)
}

type handler struct {
	l          pkgLog.Logger
	reminderUC reminder.UseCase
	taskUC     task.UseCase
	jobTimeout time.Duration
}

// New creates the handler. A zero jobTimeout uses five minutes.
func New(l pkgLog.Logger, reminderUC reminder.UseCase, taskUC task.UseCase, jobTimeout time.Duration) Handler {
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	return &handler{
		l:          l,
		reminderUC: reminderUC,
		taskUC:     taskUC,
		jobTimeout: jobTimeout,
	}
}
