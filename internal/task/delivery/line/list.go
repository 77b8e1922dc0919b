package line

import (
	"context"
	"fmt"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/pager"
	pkgLine "line-task-tracker/pkg/line"
)

// Lists up to one carousel are sent as cards, longer ones as a paged table.

func (h *handler) listPending(ctx context.Context, sc model.Scope, replyToken string) {
	tasks, err := h.taskUC.ListPending(ctx, sc)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}
	if len(tasks) == 0 {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoPending))
		return
	}
	h.replyTasks(ctx, sc, replyToken, pager.KeyMinePending, "งานค้างของฉัน", tasks, cardOptions{})
}

func (h *handler) listAssigned(ctx context.Context, sc model.Scope, replyToken string) {
	tasks, err := h.taskUC.ListAssigned(ctx, sc)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}
	if len(tasks) == 0 {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoAssigned))
		return
	}
	h.replyTasks(ctx, sc, replyToken, pager.KeyMineAssigned, "งานที่ฉันสั่ง", tasks, cardOptions{showID: true})
}

func (h *handler) listToday(ctx context.Context, sc model.Scope, replyToken string) {
	tasks, err := h.taskUC.ListToday(ctx, sc)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}
	if len(tasks) == 0 {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoToday))
		return
	}
	h.replyTasks(ctx, sc, replyToken, pager.KeyToday, "งานของฉันวันนี้", tasks, cardOptions{withButtons: true})
}

func (h *handler) listRange(ctx context.Context, sc model.Scope, replyToken string, in command.ListRange) {
	tasks, err := h.taskUC.ListRange(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}
	if len(tasks) == 0 {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoRange))
		return
	}

	rows := make([]pager.Row, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow(pager.KeyMineRange, t))
	}
	title := fmt.Sprintf("งานของฉัน (%s - %s)", in.From, in.To)
	h.reply(ctx, replyToken, pageMessage(h.pager.Start(sc.UserID, pager.KeyMineRange, rows, title)))
}

func (h *handler) listUsers(ctx context.Context, sc model.Scope, replyToken string) {
	users, err := h.taskUC.ListUsers(ctx)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}
	if len(users) == 0 {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoUsers))
		return
	}

	if len(users) > pkgLine.MaxCarousel {
		rows := make([]pager.Row, 0, len(users))
		for _, u := range users {
			rows = append(rows, userRow(u))
		}
		h.reply(ctx, replyToken, pageMessage(h.pager.Start(sc.UserID, pager.KeyUsers, rows, "ผู้ใช้งานทั้งหมด")))
		return
	}

	bubbles := make([]pkgLine.Bubble, 0, len(users))
	for _, u := range users {
		bubbles = append(bubbles, userCard(u))
	}
	h.reply(ctx, replyToken, pkgLine.NewFlex(altTextList, bubbles...))
}

func (h *handler) replyTasks(ctx context.Context, sc model.Scope, replyToken, listKey, title string, tasks []model.Task, opt cardOptions) {
	if len(tasks) > pkgLine.MaxCarousel {
		rows := make([]pager.Row, 0, len(tasks))
		for _, t := range tasks {
			rows = append(rows, taskRow(listKey, t))
		}
		h.reply(ctx, replyToken, pageMessage(h.pager.Start(sc.UserID, listKey, rows, title)))
		return
	}

	bubbles := make([]pkgLine.Bubble, 0, len(tasks))
	for _, t := range tasks {
		bubbles = append(bubbles, taskCard(t, opt))
	}
	h.reply(ctx, replyToken, pkgLine.NewFlex(altTextList, bubbles...))
}
