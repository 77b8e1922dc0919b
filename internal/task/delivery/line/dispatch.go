package line

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
	pkgLine "line-task-tracker/pkg/line"
)

// dispatch runs one parsed intent and replies to the sender.
func (h *handler) dispatch(ctx context.Context, sc model.Scope, replyToken string, in command.Intent) {
	switch v := in.(type) {
	case command.Register:
		h.register(ctx, sc, replyToken, v)
	case command.Assign:
		h.propose(ctx, sc, replyToken, v)
	case command.ConfirmDraft:
		h.confirm(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.CancelDraft:
		if err := h.draftUC.Cancel(ctx, sc, v.DraftID); err != nil {
			h.replyError(ctx, replyToken, err)
			return
		}
		h.reply(ctx, replyToken, pkgLine.NewText(textDraftCancelled))
	case command.SetStatus:
		h.setStatus(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.SetDeadline:
		h.setDeadline(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.AddNote:
		h.addNote(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.EditDetail:
		h.editDetail(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.Reassign:
		h.reassign(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.Remind:
		h.remind(ctx, h.withProfileName(ctx, sc), replyToken, v)
	case command.PageNext:
		h.turnPage(ctx, sc, replyToken, 1)
	case command.PagePrev:
		h.turnPage(ctx, sc, replyToken, -1)
	case command.Help:
		h.reply(ctx, replyToken, pkgLine.NewText(helpText))
	case command.AssignHelp:
		users, err := h.taskUC.ListUsers(ctx)
		if err != nil {
			h.l.Warnf(ctx, "line handler: failed to list users for help: %v", err)
		}
		h.reply(ctx, replyToken, pkgLine.NewText(assignHelp(users)))
	case command.ListPending:
		h.listPending(ctx, sc, replyToken)
	case command.ListAssigned:
		h.listAssigned(ctx, sc, replyToken)
	case command.ListToday:
		h.listToday(ctx, sc, replyToken)
	case command.ListUsers:
		h.listUsers(ctx, sc, replyToken)
	case command.ListRange:
		h.listRange(ctx, sc, replyToken, v)
	default:
		h.reply(ctx, replyToken, pkgLine.NewText(textUnrecognized))
	}
}

func (h *handler) register(ctx context.Context, sc model.Scope, replyToken string, in command.Register) {
	out, err := h.taskUC.Register(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	u := out.User
	if out.AlreadyRegistered {
		name := u.RealName
		if name == "" {
			name = u.Username
		}
		h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf(
			"บัญชีนี้ลงทะเบียนไว้แล้ว ✅\nชื่อ: %s\nบทบาท: %s\nหากต้องการแก้ไขสิทธิ์ติดต่อผู้ดูแลระบบครับ",
			orDash(name), u.Role.Label())))
		return
	}
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf(
		"ลงทะเบียนสำเร็จ ✅\nยินดีต้อนรับคุณ %s (%s)", u.RealName, u.Role.Label())))
}

func (h *handler) propose(ctx context.Context, sc model.Scope, replyToken string, in command.Assign) {
	d, err := h.draftUC.Propose(ctx, sc, in)
	var amb *draft.AmbiguousAssigneeError
	switch {
	case errors.As(err, &amb):
		h.reply(ctx, replyToken, ambiguousMessage(d.Assign, amb.Candidates))
		return
	case err != nil:
		h.replyError(ctx, replyToken, err)
		return
	}

	h.reply(ctx, replyToken, pkgLine.NewFlex(altTextPreview, previewCard(d, h.now().In(h.dates.Location()))))
}

// ambiguousMessage offers one quick reply per candidate, each re-sending
// the assignment in the structured form.
func ambiguousMessage(in command.Assign, candidates []model.User) pkgLine.Message {
	actions := make([]pkgLine.Action, 0, len(candidates))
	for _, u := range candidates {
		text := fmt.Sprintf("@%s: %s", u.Username, in.Detail)
		if in.Deadline != "" {
			text += " | " + command.LabelDeadline + ": " + in.Deadline
		}
		if in.Note != "" {
			text += " | " + command.LabelNote + ": " + in.Note
		}
		actions = append(actions, pkgLine.MessageAction("@"+u.Username, text))
	}
	return pkgLine.NewText(textAmbiguous).WithQuickReply(actions...)
}

func (h *handler) confirm(ctx context.Context, sc model.Scope, replyToken string, in command.ConfirmDraft) {
	out, err := h.draftUC.Confirm(ctx, sc, in.DraftID)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(withDeadline(
		fmt.Sprintf("มอบหมายงานแล้ว ✅\n#%s %s\nผู้รับ: %s", shortID(t.ID), t.Detail, t.AssigneeName),
		t.Deadline)))
	h.push(ctx, sc, t.AssigneeID, pkgLine.NewText(withDeadline(
		fmt.Sprintf("คุณได้รับงานใหม่จาก %s\nID: %s\nรายละเอียด: %s", t.AssignerName, t.ID, t.Detail),
		t.Deadline)))
}

func (h *handler) setStatus(ctx context.Context, sc model.Scope, replyToken string, in command.SetStatus) {
	out, err := h.taskUC.UpdateStatus(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf(
		"อัปเดตสถานะงาน %s เป็น %s ✅", t.ID, strings.ToUpper(string(t.Status)))))
	h.push(ctx, sc, out.NotifyID, pkgLine.NewText(fmt.Sprintf(
		"งาน %s ถูกอัปเดตเป็น \"%s\" โดย %s\nรายละเอียด: %s", t.ID, t.Status, out.Actor, t.Detail)))
}

func (h *handler) setDeadline(ctx context.Context, sc model.Scope, replyToken string, in command.SetDeadline) {
	out, err := h.taskUC.SetDeadline(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf("อัปเดตเดดไลน์ %s เป็น %s", t.ID, dueText(t.Deadline))))
	h.push(ctx, sc, out.NotifyID, pkgLine.NewText(fmt.Sprintf(
		"เดดไลน์งาน %s ถูกอัปเดตเป็น %s\nรายละเอียด: %s", t.ID, dueText(t.Deadline), t.Detail)))
}

func (h *handler) addNote(ctx context.Context, sc model.Scope, replyToken string, in command.AddNote) {
	out, err := h.taskUC.AddNote(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf("เพิ่มโน้ตให้ %s แล้ว\nโน้ต: %s", t.ID, t.Note)))
	h.push(ctx, sc, out.NotifyID, pkgLine.NewText(fmt.Sprintf(
		"%s เพิ่มโน้ตในงาน %s\nโน้ต: %s", out.Actor, t.ID, strings.TrimSpace(in.Note))))
}

func (h *handler) editDetail(ctx context.Context, sc model.Scope, replyToken string, in command.EditDetail) {
	out, err := h.taskUC.EditDetail(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf("แก้รายละเอียด %s แล้ว", t.ID)))
	h.push(ctx, sc, out.NotifyID, pkgLine.NewText(fmt.Sprintf(
		"รายละเอียดงาน %s ถูกแก้ไขโดย %s\nรายละเอียดใหม่: %s", t.ID, out.Actor, t.Detail)))
}

func (h *handler) reassign(ctx context.Context, sc model.Scope, replyToken string, in command.Reassign) {
	out, err := h.taskUC.Reassign(ctx, sc, in)
	if errors.Is(err, draft.ErrAssigneeNotFound) {
		h.reply(ctx, replyToken, pkgLine.NewText("ไม่พบผู้รับใหม่ กรุณาใช้ @username"))
		return
	}
	var amb *draft.AmbiguousAssigneeError
	if errors.As(err, &amb) {
		h.reply(ctx, replyToken, reassignChoices(in.TaskID, amb.Candidates))
		return
	}
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	t := out.Task
	h.reply(ctx, replyToken, pkgLine.NewText(fmt.Sprintf("เปลี่ยนผู้รับของ %s แล้ว → %s", t.ID, t.AssigneeName)))
	h.push(ctx, sc, out.PreviousAssigneeID, pkgLine.NewText(fmt.Sprintf(
		"งาน %s ถูกโอนไปให้ %s โดย %s\nรายละเอียด: %s", t.ID, t.AssigneeName, out.Actor, orDash(t.Detail))))
	h.push(ctx, sc, t.AssigneeID, pkgLine.NewText(withDeadline(
		fmt.Sprintf("คุณได้รับมอบหมายงาน %s จาก %s\nรายละเอียด: %s", t.ID, out.Actor, orDash(t.Detail)),
		t.Deadline)))
}

func reassignChoices(taskID string, candidates []model.User) pkgLine.Message {
	actions := make([]pkgLine.Action, 0, len(candidates))
	for _, u := range candidates {
		actions = append(actions, pkgLine.MessageAction("@"+u.Username,
			fmt.Sprintf("เปลี่ยนผู้รับ %s: @%s", taskID, u.Username)))
	}
	return pkgLine.NewText(textAmbiguous).WithQuickReply(actions...)
}

func (h *handler) remind(ctx context.Context, sc model.Scope, replyToken string, in command.Remind) {
	out, err := h.taskUC.Remind(ctx, sc, in)
	if err != nil {
		h.replyError(ctx, replyToken, err)
		return
	}

	card := taskCard(out.Task, cardOptions{showID: true, withButtons: true, assigner: out.Actor})
	if err := h.bot.Push(ctx, out.Task.AssigneeID, pkgLine.NewFlex(altTextReminder, card)); err != nil {
		h.l.Errorf(ctx, "line handler: failed to push reminder for %s: %v", out.Task.ID, err)
		h.reply(ctx, replyToken, pkgLine.NewText(textGenericError))
		return
	}
	h.reply(ctx, replyToken, pkgLine.NewText(textRemindSent))
}

func (h *handler) turnPage(ctx context.Context, sc model.Scope, replyToken string, delta int) {
	p, ok := h.pager.Advance(sc.UserID, delta)
	if !ok {
		h.reply(ctx, replyToken, pkgLine.NewText(textNoCursor))
		return
	}
	h.reply(ctx, replyToken, pageMessage(p))
}
