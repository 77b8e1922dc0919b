package draft

import (
	"fmt"
	"strings"

	"line-task-tracker/internal/model"
)

// ResolveAssignee picks the user ref points at. An exact match on id,
// username or real name wins; otherwise a single partial match on username
// or real name. Several partial matches give *AmbiguousAssigneeError.
func ResolveAssignee(users []model.User, ref string) (model.User, error) {
	ref = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ref), "@"))
	key := strings.ToLower(ref)
	if key == "" {
		return model.User{}, ErrAssigneeNotFound
	}

	for _, u := range users {
		if u.ID == ref || strings.ToLower(u.Username) == key || strings.ToLower(u.RealName) == key {
			return u, nil
		}
	}

	var partial []model.User
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Username), key) || strings.Contains(strings.ToLower(u.RealName), key) {
			partial = append(partial, u)
		}
	}
	switch len(partial) {
	case 0:
		return model.User{}, fmt.Errorf("%q: %w", ref, ErrAssigneeNotFound)
	case 1:
		return partial[0], nil
	}
	if len(partial) > MaxCandidates {
		partial = partial[:MaxCandidates]
	}
	return model.User{}, &AmbiguousAssigneeError{Ref: ref, Candidates: partial}
}
