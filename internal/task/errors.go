package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssignerOnly       = errors.New("only the assigner may do this")
	ErrNotParty           = errors.New("not the assigner or assignee of this task")
	ErrNoAssigneeID       = errors.New("task has no assignee user id")
	ErrRegisterIncomplete = errors.New("username and real name are required")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrStoreFailure       = errors.New("task store write failed")
)
