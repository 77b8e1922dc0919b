package task

import "line-task-tracker/internal/model"

// RegisterOutput reports the sender's user record. AlreadyRegistered is set
// when the record existed and nothing was written.
type RegisterOutput struct {
	User              model.User
	AlreadyRegistered bool
}

// UpdateOutput is the task after a merge write.
type UpdateOutput struct {
	Task     model.Task
	Previous model.Task
	Actor    string // display name of the sender
	NotifyID string // user to tell about the change, may be empty
}

// ReassignOutput carries both assignees so each can be told.
type ReassignOutput struct {
	Task               model.Task
	Previous           model.Task
	Actor              string
	Assignee           model.User
	PreviousAssigneeID string
}

// RemindOutput is the task whose assignee should get a reminder card.
type RemindOutput struct {
	Task  model.Task
	Actor string
}

// ExportInput filters the CSV export. Empty fields do not filter.
type ExportInput struct {
	AssigneeID   string `form:"assignee_id"`
	AssigneeName string `form:"assignee_name"`
	From         string `form:"from"`
	To           string `form:"to"`
}
