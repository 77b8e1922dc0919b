package usecase

import (
	"context"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
)

func (uc *implUseCase) Propose(ctx context.Context, sc model.Scope, in command.Assign) (draft.Draft, error) {
	preset, hasPreset := uc.presets.Take(sc.UserID)
	if hasPreset {
		in = applyPreset(in, preset)
	}

	users, err := uc.users.ListUsers(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "draft.usecase.Propose: failed to list users: %v", err)
		uc.restorePreset(sc.UserID, preset, hasPreset)
		return draft.Draft{}, err
	}

	assignee, err := draft.ResolveAssignee(users, in.AssigneeRef)
	if err != nil {
		uc.l.Infof(ctx, "draft.usecase.Propose: %v", err)
		uc.restorePreset(sc.UserID, preset, hasPreset)
		// Assign is returned with the preset applied for building choices.
		return draft.Draft{Assign: in}, err
	}

	d := draft.Draft{
		ID:        uc.newID(draft.DraftIDPrefix, 6),
		Assign:    in,
		Assignee:  assignee,
		CreatedAt: uc.now(),
	}
	uc.drafts.Set(sc.UserID, d)

	uc.l.Infof(ctx, "draft.usecase.Propose: draft %s for %s", d.ID, assignee.ID)
	return d, nil
}

// restorePreset puts back a preset taken by a proposal that made no draft.
// A preset set in the meantime is newer and wins.
func (uc *implUseCase) restorePreset(userID string, p draft.Preset, had bool) {
	if !had {
		return
	}
	if _, ok := uc.presets.Get(userID); ok {
		return
	}
	uc.presets.Set(userID, p)
}
