package usecase

import (
	"context"
	"fmt"
	"time"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
)

// Confirm takes the draft out of the store before writing the task, so a
// second confirm racing this one finds nothing. A failed write loses the
// draft; the user re-issues the assignment.
func (uc *implUseCase) Confirm(ctx context.Context, sc model.Scope, draftID string) (draft.ConfirmOutput, error) {
	d, ok := uc.drafts.TakeIf(sc.UserID, matchID(draftID))
	if !ok {
		return draft.ConfirmOutput{}, draft.ErrDraftNotFound
	}

	now := uc.now().UTC().Format(time.RFC3339)
	assigneeName := d.Assignee.Username
	if assigneeName == "" {
		assigneeName = d.Assign.AssigneeRef
	}

	t := model.Task{
		ID:           uc.newID(draft.TaskIDPrefix, 8),
		AssignerID:   sc.UserID,
		AssignerName: uc.displayName(ctx, sc),
		AssigneeID:   d.Assignee.ID,
		AssigneeName: assigneeName,
		Detail:       d.Assign.Detail,
		Status:       model.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
		Deadline:     d.Assign.Deadline,
		Note:         d.Assign.Note,
	}

	if err := uc.tasks.UpsertTask(ctx, t); err != nil {
		uc.l.Errorf(ctx, "draft.usecase.Confirm: failed to write task %s from %s: %v", t.ID, d.ID, err)
		return draft.ConfirmOutput{}, fmt.Errorf("%w: %w", draft.ErrStoreFailure, err)
	}

	if uc.mirror != nil && t.Deadline != "" {
		if err := uc.mirror.Sync(ctx, t); err != nil {
			uc.l.Warnf(ctx, "draft.usecase.Confirm: calendar mirror failed for %s: %v", t.ID, err)
		}
	}

	uc.l.Infof(ctx, "draft.usecase.Confirm: committed %s as %s", d.ID, t.ID)
	return draft.ConfirmOutput{Task: t, Assignee: d.Assignee}, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, draftID string) error {
	d, ok := uc.drafts.TakeIf(sc.UserID, matchID(draftID))
	if !ok {
		return draft.ErrDraftNotFound
	}
	uc.l.Infof(ctx, "draft.usecase.Cancel: dropped %s", d.ID)
	return nil
}
