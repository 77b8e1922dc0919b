package command

import (
	"regexp"
	"strings"
	"time"

	"line-task-tracker/internal/model"
)

var (
	reRegister      = regexp.MustCompile(`(?i)^(?:ลงทะเบียน|สมัคร|ลงชื่อ|register|signup)(?:\s*[:：]\s*|\s+|$)(.*)$`)
	reRegisterSplit = regexp.MustCompile(`\s*[,|]\s*`)
)

// register handles "ลงทะเบียน[:] username real name [role]" and the comma or
// pipe separated "username,real name,role" form.
func register(_ *Parser, text string, _ time.Time) (Intent, bool) {
	m := reRegister.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	payload := strings.TrimSpace(m[1])
	if payload == "" {
		return Register{}, true
	}

	if strings.ContainsAny(payload, ",|") {
		var parts []string
		for _, p := range reRegisterSplit.Split(payload, -1) {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		var r Register
		if len(parts) > 0 {
			r.Username = parts[0]
		}
		if len(parts) > 1 {
			r.RealName = parts[1]
		}
		if len(parts) > 2 {
			r.Role = parts[2]
		}
		return r, true
	}

	parts := strings.Fields(payload)
	if len(parts) < 2 {
		return Register{Username: parts[0]}, true
	}
	r := Register{Username: parts[0]}
	names := parts[1:]
	if last := parts[len(parts)-1]; model.IsRoleWord(last) {
		r.Role = strings.ToLower(last)
		names = parts[1 : len(parts)-1]
	}
	r.RealName = strings.Join(names, " ")
	return r, true
}
