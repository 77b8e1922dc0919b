package command

import (
	"regexp"
	"strings"
	"time"

	"line-task-tracker/internal/model"
	"line-task-tracker/pkg/datemath"
)

const (
	taskIDPattern  = `(TASK_[A-Za-z0-9]+)`
	draftIDPattern = `(TMP_[A-Za-z0-9]+)`
)

var (
	reStatusDone  = regexp.MustCompile(`(?i)^done\s+` + taskIDPattern + `$`)
	reStatusDoing = regexp.MustCompile(`^กำลังดำเนินการ\s+` + taskIDPattern + `$`)
	reSetDeadline = regexp.MustCompile(`^(?:ตั้งกำหนดส่ง|แก้เดดไลน์)\s+` + taskIDPattern + `\s*[:：]\s*(.+)$`)
	reAddNote     = regexp.MustCompile(`^เพิ่มโน้ต\s+` + taskIDPattern + `\s*[:：]\s*(.+)$`)
	reEditDetail  = regexp.MustCompile(`^แก้รายละเอียด\s+` + taskIDPattern + `\s*[:：]\s*(.+)$`)
	reReassign    = regexp.MustCompile(`^เปลี่ยนผู้รับ\s+` + taskIDPattern + `\s*[:：]\s*@?(\S+)$`)
	reRemind      = regexp.MustCompile(`(?i)^(?:เตือน|remind)\s+` + taskIDPattern + `$`)
	reConfirm     = regexp.MustCompile(`^ยืนยันมอบหมาย(?:\s+` + draftIDPattern + `)?$`)
	reCancel      = regexp.MustCompile(`^ยกเลิกมอบหมาย(?:\s+` + draftIDPattern + `)?$`)
	reAssigned    = regexp.MustCompile(`^(?:ดู)?งานที่ฉันสั่ง$`)
	reListRange   = regexp.MustCompile(`^ดูงานของฉันทั้งหมด\s*[:：]\s*(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}/\d{2}/\d{4})$`)
)

// rule is one grammar entry; extract reports whether it matched.
type rule struct {
	name    string
	extract func(p *Parser, text string, now time.Time) (Intent, bool)
}

// rules are evaluated in order and the first match wins.
var rules = []rule{
	{name: "assign", extract: (*Parser).structuredAssign},
	{name: "assign_loose", extract: (*Parser).looseAssign},
	{name: "register", extract: register},
	{name: "status", extract: status},
	{name: "set_deadline", extract: (*Parser).setDeadline},
	{name: "add_note", extract: match2(reAddNote, func(id, v string) Intent { return AddNote{TaskID: id, Note: v} })},
	{name: "edit_detail", extract: match2(reEditDetail, func(id, v string) Intent { return EditDetail{TaskID: id, Detail: v} })},
	{name: "reassign", extract: match2(reReassign, func(id, v string) Intent { return Reassign{TaskID: id, AssigneeRef: v} })},
	{name: "remind", extract: remind},
	{name: "draft", extract: draft},
	{name: "page", extract: page},
	{name: "menu", extract: menu},
}

// Parser classifies chat messages into intents.
type Parser struct {
	dates *datemath.Parser
	now   func() time.Time
}

// NewParser creates a parser resolving deadlines with dates.
func NewParser(dates *datemath.Parser) *Parser {
	return &Parser{dates: dates, now: time.Now}
}

// Parse classifies text using the current time for deadline resolution.
func (p *Parser) Parse(text string) Intent {
	return p.ParseAt(text, p.now())
}

// ParseAt classifies text, resolving relative deadlines against now.
func (p *Parser) ParseAt(text string, now time.Time) Intent {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unrecognized{}
	}
	for _, r := range rules {
		if in, ok := r.extract(p, text, now); ok {
			return in
		}
	}
	return Unrecognized{Text: text}
}

func match2(re *regexp.Regexp, build func(id, value string) Intent) func(*Parser, string, time.Time) (Intent, bool) {
	return func(_ *Parser, text string, _ time.Time) (Intent, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return nil, false
		}
		return build(m[1], strings.TrimSpace(m[2])), true
	}
}

func status(_ *Parser, text string, _ time.Time) (Intent, bool) {
	if m := reStatusDone.FindStringSubmatch(text); m != nil {
		return SetStatus{TaskID: m[1], Status: model.StatusDone}, true
	}
	if m := reStatusDoing.FindStringSubmatch(text); m != nil {
		return SetStatus{TaskID: m[1], Status: model.StatusDoing}, true
	}
	return nil, false
}

func (p *Parser) setDeadline(text string, now time.Time) (Intent, bool) {
	m := reSetDeadline.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	phrase := strings.TrimSpace(m[2])
	return SetDeadline{
		TaskID:         m[1],
		DeadlinePhrase: phrase,
		Deadline:       p.dates.ResolveString(phrase, now),
	}, true
}

func remind(_ *Parser, text string, _ time.Time) (Intent, bool) {
	m := reRemind.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	return Remind{TaskID: m[1]}, true
}

func draft(_ *Parser, text string, _ time.Time) (Intent, bool) {
	if m := reConfirm.FindStringSubmatch(text); m != nil {
		return ConfirmDraft{DraftID: m[1]}, true
	}
	if m := reCancel.FindStringSubmatch(text); m != nil {
		return CancelDraft{DraftID: m[1]}, true
	}
	return nil, false
}

func page(_ *Parser, text string, _ time.Time) (Intent, bool) {
	switch strings.ToLower(text) {
	case TokenNext, "next":
		return PageNext{}, true
	case TokenPrev, "prev":
		return PagePrev{}, true
	}
	return nil, false
}

func menu(_ *Parser, text string, _ time.Time) (Intent, bool) {
	switch strings.ToLower(text) {
	case MenuHelp, "help":
		return Help{}, true
	case MenuAssignHelp:
		return AssignHelp{}, true
	case MenuUsers:
		return ListUsers{}, true
	case MenuPending:
		return ListPending{}, true
	case MenuToday, "งานคงเหลือวันนี้":
		return ListToday{}, true
	}
	if reAssigned.MatchString(text) {
		return ListAssigned{}, true
	}
	if m := reListRange.FindStringSubmatch(text); m != nil {
		return ListRange{From: m[1], To: m[2]}, true
	}
	return nil, false
}
