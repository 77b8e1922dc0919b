package appscript

import (
	"bytes"
	"encoding/json"
	"strconv"

	"line-task-tracker/internal/model"
)

// TaskRecord is one row of the task sheet.
type TaskRecord struct {
	TaskID       Text `json:"task_id"`
	AssignerName Text `json:"assigner_name"`
	AssignerID   Text `json:"assigner_id"`
	AssigneeName Text `json:"assignee_name"`
	AssigneeID   Text `json:"assignee_id"`
	TaskDetail   Text `json:"task_detail"`
	Status       Text `json:"status"`
	CreatedDate  Text `json:"created_date"`
	UpdatedDate  Text `json:"updated_date"`
	Deadline     Text `json:"deadline"`
	Note         Text `json:"note"`
}

// UserRecord is one row of the user sheet.
type UserRecord struct {
	UserID    Text `json:"user_id"`
	Username  Text `json:"username"`
	RealName  Text `json:"real_name"`
	Role      Text `json:"role"`
	Status    Text `json:"status"`
	UpdatedAt Text `json:"updated_at"`
}

// Text is a sheet cell. Cells typed as numbers or booleans in the sheet come
// back as JSON numbers or booleans and are kept in their printed form.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
	default:
		if n, err := strconv.ParseFloat(string(b), 64); err == nil {
			*t = Text(strconv.FormatFloat(n, 'f', -1, 64))
			return nil
		}
		*t = Text(b)
	}
	return nil
}

func toTask(r TaskRecord) model.Task {
	return model.Task{
		ID:           string(r.TaskID),
		AssignerID:   string(r.AssignerID),
		AssignerName: string(r.AssignerName),
		AssigneeID:   string(r.AssigneeID),
		AssigneeName: string(r.AssigneeName),
		Detail:       string(r.TaskDetail),
		Status:       model.NormalizeStatus(string(r.Status)),
		CreatedAt:    string(r.CreatedDate),
		UpdatedAt:    string(r.UpdatedDate),
		Deadline:     string(r.Deadline),
		Note:         string(r.Note),
	}
}

func fromTask(t model.Task) map[string]any {
	status := t.Status
	if status == "" {
		status = model.StatusPending
	}
	return map[string]any{
		"task_id":       t.ID,
		"assigner_name": t.AssignerName,
		"assigner_id":   t.AssignerID,
		"assignee_name": t.AssigneeName,
		"assignee_id":   t.AssigneeID,
		"task_detail":   t.Detail,
		"status":        string(status),
		"created_date":  t.CreatedAt,
		"updated_date":  t.UpdatedAt,
		"deadline":      t.Deadline,
		"note":          t.Note,
	}
}

func toUser(r UserRecord) model.User {
	return model.User{
		ID:        string(r.UserID),
		Username:  string(r.Username),
		RealName:  string(r.RealName),
		Role:      model.NormalizeRole(string(r.Role)),
		Status:    string(r.Status),
		UpdatedAt: string(r.UpdatedAt),
	}
}

func fromUser(u model.User) map[string]any {
	role := u.Role
	if role == "" {
		role = model.RoleUser
	}
	status := u.Status
	if status == "" {
		status = "Active"
	}
	return map[string]any{
		"user_id":   u.ID,
		"username":  u.Username,
		"real_name": u.RealName,
		"role":      string(role),
		"status":    status,
	}
}
