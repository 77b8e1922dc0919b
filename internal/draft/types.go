package draft

import (
	"time"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
)

const (
	DraftIDPrefix = "TMP_"
	TaskIDPrefix  = "TASK_"

	// MaxCandidates caps the choices offered for an ambiguous assignee.
	MaxCandidates = 13
)

// Preset keys sent by postback buttons as "preset=<key>".
const (
	PresetUrgent       = "urgent"
	PresetDueToday1730 = "due_today_1730"
	PresetDueTmrw0900  = "due_tmrw_0900"
)

// Draft is an unconfirmed assignment.
type Draft struct {
	ID        string
	Assign    command.Assign
	Assignee  model.User
	CreatedAt time.Time
}

// Preset holds defaults for the user's next proposal.
type Preset struct {
	Urgent bool
	Due    string // stored deadline form
}

// ConfirmOutput is the committed task with the assignee to notify.
type ConfirmOutput struct {
	Task     model.Task
	Assignee model.User
}
