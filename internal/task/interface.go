package task

import (
	"context"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Register creates the sender's user record unless one exists.
	Register(ctx context.Context, sc model.Scope, input command.Register) (RegisterOutput, error)

	// UpdateStatus is allowed for the assigner and the assignee.
	UpdateStatus(ctx context.Context, sc model.Scope, input command.SetStatus) (UpdateOutput, error)
	// AddNote appends to the note; allowed for the assigner and the assignee.
	AddNote(ctx context.Context, sc model.Scope, input command.AddNote) (UpdateOutput, error)
	// SetDeadline, EditDetail, Reassign and Remind are assigner only.
	SetDeadline(ctx context.Context, sc model.Scope, input command.SetDeadline) (UpdateOutput, error)
	EditDetail(ctx context.Context, sc model.Scope, input command.EditDetail) (UpdateOutput, error)
	Reassign(ctx context.Context, sc model.Scope, input command.Reassign) (ReassignOutput, error)
	Remind(ctx context.Context, sc model.Scope, input command.Remind) (RemindOutput, error)

	ListPending(ctx context.Context, sc model.Scope) ([]model.Task, error)
	ListAssigned(ctx context.Context, sc model.Scope) ([]model.Task, error)
	ListToday(ctx context.Context, sc model.Scope) ([]model.Task, error)
	ListRange(ctx context.Context, sc model.Scope, input command.ListRange) ([]model.Task, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	// Export lists tasks for the CSV download without reordering them.
	Export(ctx context.Context, input ExportInput) ([]model.Task, error)
}
