package line

import (
	"fmt"
	"strings"
	"time"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
	"line-task-tracker/internal/pager"
	pkgLine "line-task-tracker/pkg/line"
)

const (
	colorMuted  = "#777777"
	colorText   = "#555555"
	colorDone   = "#2e7d32"
	colorDoing  = "#1565c0"
	colorOther  = "#9e9e9e"
	colorStatus = "#0066CC"
)

type cardOptions struct {
	showID      bool
	withButtons bool
	assigner    string // overrides the task's assigner name
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// shortID is the last four characters of an id, used as "#abcd".
func shortID(id string) string {
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

// dueText shows a stored deadline as "2006-01-02 15:04".
func dueText(deadline string) string {
	if deadline == "" {
		return "-"
	}
	r := []rune(deadline)
	if len(r) > 16 {
		r = r[:16]
	}
	return strings.Replace(string(r), "T", " ", 1)
}

func dayOf(t model.Task) string {
	s := t.UpdatedAt
	if s == "" {
		s = t.CreatedAt
	}
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}

func statusColor(s model.Status) string {
	switch model.NormalizeStatus(string(s)) {
	case model.StatusDone:
		return colorDone
	case model.StatusDoing:
		return colorDoing
	}
	return colorOther
}

func smallText(text, color string) pkgLine.Component {
	return pkgLine.Component{Type: "text", Text: text, Size: "xs", Color: color}
}

func button(style, label, text string) pkgLine.Component {
	a := pkgLine.MessageAction(label, text)
	return pkgLine.Component{Type: "button", Style: style, Height: "sm", Action: &a}
}

func taskCard(t model.Task, opt cardOptions) pkgLine.Bubble {
	details := []pkgLine.Component{}
	if opt.showID {
		details = append(details, smallText("ID: "+t.ID, colorMuted))
	}
	details = append(details,
		smallText("อัปเดต: "+orDash(dayOf(t)), colorMuted),
		smallText("กำหนดส่ง: "+dueText(t.Deadline), colorText),
	)
	if t.AssigneeName != "" {
		details = append(details, smallText("ผู้รับ: "+t.AssigneeName, colorText))
	}
	assigner := t.AssignerName
	if opt.assigner != "" {
		assigner = opt.assigner
	}
	if assigner != "" {
		details = append(details, smallText("ผู้สั่ง: "+assigner, colorText))
	}
	if t.Note != "" {
		details = append(details, smallText("โน้ต: "+clip(t.Note, 60), colorMuted))
	}

	status := strings.ToUpper(string(model.NormalizeStatus(string(t.Status))))
	b := pkgLine.Bubble{
		Type: "bubble",
		Body: &pkgLine.Component{
			Type: "box", Layout: "vertical", Spacing: "sm",
			Contents: []pkgLine.Component{
				{Type: "text", Text: orDash(clip(t.Detail, 80)), Weight: "bold", Wrap: true},
				{Type: "box", Layout: "vertical", Spacing: "xs", Contents: details},
				{Type: "box", Layout: "baseline", Contents: []pkgLine.Component{
					{Type: "text", Text: status, Size: "xs", Color: statusColor(t.Status), Weight: "bold"},
				}},
			},
		},
	}
	if opt.withButtons && !t.IsDone() {
		b.Footer = &pkgLine.Component{
			Type: "box", Layout: "vertical", Spacing: "sm",
			Contents: []pkgLine.Component{
				button("primary", "✅ เสร็จแล้ว", command.VerbDone+" "+t.ID),
				button("secondary", "⏳ กำลังทำ", command.VerbDoing+" "+t.ID),
			},
		}
	}
	return b
}

// previewCard shows a draft with confirm and cancel buttons. The draft id
// only appears inside the button texts.
func previewCard(d draft.Draft, now time.Time) pkgLine.Bubble {
	details := []pkgLine.Component{
		smallText("อัปเดต: "+now.Format("2006-01-02"), colorMuted),
		smallText("กำหนดส่ง: "+dueText(d.Assign.Deadline), colorText),
		smallText("ผู้รับ: "+orDash(d.Assignee.DisplayName()), colorText),
		smallText("ผู้สั่ง: (คุณ)", colorText),
	}
	if d.Assign.Note != "" {
		details = append(details, smallText("โน้ต: "+clip(d.Assign.Note, 60), colorMuted))
	}
	return pkgLine.Bubble{
		Type: "bubble",
		Body: &pkgLine.Component{
			Type: "box", Layout: "vertical", Spacing: "sm",
			Contents: []pkgLine.Component{
				{Type: "text", Text: clip(d.Assign.Detail, 80), Weight: "bold", Wrap: true},
				{Type: "box", Layout: "vertical", Spacing: "xs", Contents: details},
				{Type: "box", Layout: "baseline", Contents: []pkgLine.Component{
					{Type: "text", Text: "PENDING", Size: "xs", Color: colorOther, Weight: "bold"},
				}},
			},
		},
		Footer: &pkgLine.Component{
			Type: "box", Layout: "vertical", Spacing: "sm",
			Contents: []pkgLine.Component{
				button("primary", command.VerbConfirm, command.VerbConfirm+" "+d.ID),
				button("secondary", "ยกเลิก", command.VerbCancel+" "+d.ID),
			},
		},
	}
}

func userCard(u model.User) pkgLine.Bubble {
	name := u.RealName
	if name == "" {
		name = u.Username
	}
	status := u.Status
	if status == "" {
		status = "Active"
	}
	updated := u.UpdatedAt
	if len(updated) > 10 {
		updated = updated[:10]
	}
	return pkgLine.Bubble{
		Type: "bubble",
		Body: &pkgLine.Component{
			Type: "box", Layout: "vertical", Spacing: "sm",
			Contents: []pkgLine.Component{
				{Type: "text", Text: orDash(name), Weight: "bold", Wrap: true},
				{Type: "text", Text: "บทบาท: " + u.Role.Label(), Size: "sm"},
				{Type: "text", Text: "สถานะ: " + status, Size: "sm"},
				smallText("อัปเดต: "+orDash(updated), colorMuted),
			},
		},
	}
}

// tableBubble renders one pager page as a flex table.
func tableBubble(p pager.Page) pkgLine.Bubble {
	header := make([]pkgLine.Component, 0, len(p.Headers))
	for _, h := range p.Headers {
		header = append(header, pkgLine.Component{
			Type: "text", Text: orDash(h), Size: "sm", Weight: "bold", Color: colorText, Flex: 1, Wrap: true,
		})
	}

	body := []pkgLine.Component{
		{Type: "box", Layout: "horizontal", Contents: header},
		{Type: "separator", Margin: "sm"},
	}
	for i, row := range p.Rows {
		bg := "#FFFFFF"
		if i%2 == 0 {
			bg = "#F9F9F9"
		}
		body = append(body, pkgLine.Component{
			Type: "box", Layout: "vertical", Margin: "sm", BackgroundColor: bg, PaddingAll: "4px",
			Contents: []pkgLine.Component{
				{Type: "box", Layout: "horizontal", Contents: []pkgLine.Component{
					{Type: "text", Text: orDash(row[0]), Size: "xs", Flex: 2, Color: "#888888"},
					{Type: "text", Text: orDash(row[1]), Size: "sm", Flex: 8, Wrap: true, Weight: "bold"},
				}},
				{Type: "box", Layout: "horizontal", Contents: []pkgLine.Component{
					{Type: "text", Text: orDash(row[2]), Size: "xs", Flex: 5, Color: "#666666"},
					{Type: "text", Text: orDash(row[3]), Size: "xs", Flex: 3, Align: "end", Color: colorStatus},
				}},
			},
		})
	}

	return pkgLine.Bubble{
		Type: "bubble",
		Header: &pkgLine.Component{
			Type: "box", Layout: "vertical",
			Contents: []pkgLine.Component{{Type: "text", Text: p.Title, Weight: "bold", Size: "md"}},
		},
		Body: &pkgLine.Component{Type: "box", Layout: "vertical", Spacing: "sm", Contents: body},
	}
}

// pageMessage is a table page with prev/next quick replies.
func pageMessage(p pager.Page) pkgLine.Message {
	var nav []pkgLine.Action
	if p.HasPrev() {
		nav = append(nav, pkgLine.MessageAction(command.TokenPrev, command.TokenPrev))
	}
	if p.HasNext() {
		nav = append(nav, pkgLine.MessageAction(command.TokenNext, command.TokenNext))
	}
	return pkgLine.NewFlex(altTextList, tableBubble(p)).WithQuickReply(nav...)
}

// taskRow is one pager row; the third column is the assignee on the
// assigner's list and the deadline elsewhere.
func taskRow(listKey string, t model.Task) pager.Row {
	third := dueText(t.Deadline)
	if listKey == pager.KeyMineAssigned {
		third = orDash(t.AssigneeName)
	}
	return pager.Row{
		dayOf(t),
		fmt.Sprintf("%s  #%s", clip(t.Detail, 40), shortID(t.ID)),
		third,
		strings.ToUpper(string(model.NormalizeStatus(string(t.Status)))),
	}
}

func userRow(u model.User) pager.Row {
	updated := u.UpdatedAt
	if len(updated) > 10 {
		updated = updated[:10]
	}
	name := u.RealName
	if name == "" {
		name = u.Username
	}
	status := u.Status
	if status == "" {
		status = "Active"
	}
	return pager.Row{updated, fmt.Sprintf("%s (%s)", orDash(name), u.Role.Label()), status, "-"}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
