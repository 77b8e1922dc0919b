package line

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/pager"
	"line-task-tracker/internal/task"
	"line-task-tracker/pkg/datemath"
	pkgLine "line-task-tracker/pkg/line"
	pkgLog "line-task-tracker/pkg/log"
)

// Handler is the interface for the LINE delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Messenger sends messages through the LINE Messaging API.
type Messenger interface {
	Reply(ctx context.Context, replyToken string, messages ...pkgLine.Message) error
	Push(ctx context.Context, to string, messages ...pkgLine.Message) error
	Profile(ctx context.Context, userID string) (pkgLine.Profile, error)
}

type handler struct {
	l       pkgLog.Logger
	bot     Messenger
	parser  *command.Parser
	taskUC  task.UseCase
	draftUC draft.UseCase
	pager   *pager.Pager
	dates   *datemath.Parser
	now     func() time.Time
}

// New creates a new LINE delivery handler.
func New(
	l pkgLog.Logger,
	bot Messenger,
	parser *command.Parser,
	taskUC task.UseCase,
	draftUC draft.UseCase,
	pgr *pager.Pager,
	dates *datemath.Parser,
) Handler {
	return newHandler(l, bot, parser, taskUC, draftUC, pgr, dates)
}

func newHandler(
	l pkgLog.Logger,
	bot Messenger,
	parser *command.Parser,
	taskUC task.UseCase,
	draftUC draft.UseCase,
	pgr *pager.Pager,
	dates *datemath.Parser,
) *handler {
	return &handler{
		l:       l,
		bot:     bot,
		parser:  parser,
		taskUC:  taskUC,
		draftUC: draftUC,
		pager:   pgr,
		dates:   dates,
		now:     time.Now,
	}
}
