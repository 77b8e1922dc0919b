package draft

import (
	"context"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
)

// UseCase drives the per-user propose, confirm and cancel flow of a task
// assignment.
type UseCase interface {
	// Propose resolves the assignee and stores the draft, replacing any
	// earlier draft of the same user.
	Propose(ctx context.Context, sc model.Scope, in command.Assign) (Draft, error)
	// Confirm commits the user's draft. A non-empty draftID must match it.
	Confirm(ctx context.Context, sc model.Scope, draftID string) (ConfirmOutput, error)
	// Cancel drops the user's draft. A non-empty draftID must match it.
	Cancel(ctx context.Context, sc model.Scope, draftID string) error
	// SetPreset records a default applied to the user's next proposal.
	SetPreset(ctx context.Context, sc model.Scope, key string) (Preset, error)
}
