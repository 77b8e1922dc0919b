package repository

// ListTasksOptions filters a task listing. Empty fields do not filter.
type ListTasksOptions struct {
	AssigneeID   string
	AssigneeName string // used only when AssigneeID is empty
	AssignerID   string
	From         string // RFC3339, inclusive
	To           string // RFC3339, inclusive
}
