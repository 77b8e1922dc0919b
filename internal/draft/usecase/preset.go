package usecase

import (
	"context"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
)

var presetDue = map[string]string{
	draft.PresetDueToday1730: "วันนี้ 17:30",
	draft.PresetDueTmrw0900:  "พรุ่งนี้ 09:00",
}

func (uc *implUseCase) SetPreset(ctx context.Context, sc model.Scope, key string) (draft.Preset, error) {
	p, _ := uc.presets.Get(sc.UserID)

	switch key {
	case draft.PresetUrgent:
		p.Urgent = true
	case draft.PresetDueToday1730, draft.PresetDueTmrw0900:
		p.Due = uc.dateMath.ResolveString(presetDue[key], uc.now())
	default:
		return draft.Preset{}, draft.ErrUnknownPreset
	}

	uc.presets.Set(sc.UserID, p)
	uc.l.Debugf(ctx, "draft.usecase.SetPreset: %s -> %+v", key, p)
	return p, nil
}
