package draft

import (
	"errors"
	"fmt"
	"strings"

	"line-task-tracker/internal/model"
)

var (
	ErrDraftNotFound    = errors.New("draft not found")
	ErrAssigneeNotFound = errors.New("assignee not found")
	ErrStoreFailure     = errors.New("task store write failed")
	ErrUnknownPreset    = errors.New("unknown preset")
)

// AmbiguousAssigneeError lists the users a reference partially matched.
type AmbiguousAssigneeError struct {
	Ref        string
	Candidates []model.User
}

func (e *AmbiguousAssigneeError) Error() string {
	names := make([]string, 0, len(e.Candidates))
	for _, u := range e.Candidates {
		names = append(names, u.Username)
	}
	return fmt.Sprintf("assignee %q is ambiguous: %s", e.Ref, strings.Join(names, ", "))
}
