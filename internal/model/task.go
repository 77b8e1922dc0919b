package model

import "strings"

// Status is the lifecycle stage of a task.
type Status string

const (
	StatusPending Status = "pending"
	StatusDoing   Status = "doing"
	StatusDone    Status = "done"
)

// NormalizeStatus lower-cases s; an empty status is treated as pending the
// way the sheet does.
func NormalizeStatus(s string) Status {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return StatusPending
	}
	return Status(v)
}

// Task is a task record as stored in the task sheet.
// Dates are kept as the strings the store returns.
type Task struct {
	ID           string
	AssignerID   string
	AssignerName string
	AssigneeID   string
	AssigneeName string
	Detail       string
	Status       Status
	CreatedAt    string
	UpdatedAt    string
	Deadline     string
	Note         string
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return NormalizeStatus(string(t.Status)) == StatusDone
}

// IsParty reports whether userID is the assigner or the assignee.
func (t Task) IsParty(userID string) bool {
	return userID != "" && (t.AssignerID == userID || t.AssigneeID == userID)
}

// Counterparty returns the other side of the task for userID, or "" when
// userID is not part of it.
func (t Task) Counterparty(userID string) string {
	switch userID {
	case t.AssigneeID:
		return t.AssignerID
	case t.AssignerID:
		return t.AssigneeID
	}
	return ""
}

// ShortID is the last four characters of the id, shown as "#abcd".
func (t Task) ShortID() string {
	if len(t.ID) <= 4 {
		return t.ID
	}
	return t.ID[len(t.ID)-4:]
}
