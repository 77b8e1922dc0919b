package command_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"line-task-tracker/internal/command"
	"line-task-tracker/internal/model"
	"line-task-tracker/pkg/datemath"
)

func newParser(t *testing.T) (*command.Parser, time.Time) {
	t.Helper()
	dates, err := datemath.NewParser("Asia/Bangkok")
	require.NoError(t, err)
	// Wednesday
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, dates.Location())
	return command.NewParser(dates), now
}

func TestParse_LooseAssign(t *testing.T) {
	p, now := newParser(t)

	tests := []struct {
		name string
		text string
		want command.Assign
	}{
		{
			name: "tomorrow with time",
			text: "@po ส่งรายงาน พรุ่งนี้ 09:00",
			want: command.Assign{AssigneeRef: "po", Detail: "ส่งรายงาน", DeadlinePhrase: "พรุ่งนี้ 09:00", Deadline: "2024-05-02T09:00:00", Loose: true},
		},
		{
			name: "before afternoon hour with filler",
			text: "@test ขอทำป้ายหน้าร้าน ก่อนบ่าย 3 นะ",
			want: command.Assign{AssigneeRef: "test", Detail: "ขอทำป้ายหน้าร้าน", DeadlinePhrase: "บ่าย 3", Deadline: "2024-05-01T15:00:00", Loose: true},
		},
		{
			name: "urgent today",
			text: "@po ทำ rich menu วันนี้ ด่วน",
			want: command.Assign{AssigneeRef: "po", Detail: "ทำ rich menu", DeadlinePhrase: "วันนี้", Deadline: "2024-05-01T17:30:00", Note: "[URGENT]", Loose: true},
		},
		{
			name: "weekday next with hour only",
			text: "@po เตรียมสไลด์ วันจันทร์หน้า 10",
			want: command.Assign{AssigneeRef: "po", Detail: "เตรียมสไลด์", DeadlinePhrase: "จันทร์หน้า 10:00", Deadline: "2024-05-06T10:00:00", Loose: true},
		},
		{
			name: "day and month",
			text: "@po ปิดงบ 15/05 ภายใน",
			want: command.Assign{AssigneeRef: "po", Detail: "ปิดงบ", DeadlinePhrase: "15/05", Deadline: "2024-05-15T17:30:00", Loose: true},
		},
		{
			name: "calm word is not urgent",
			text: "@po จัดโต๊ะ ไม่รีบนะ",
			want: command.Assign{AssigneeRef: "po", Detail: "จัดโต๊ะ", Note: "ไม่รีบ", Loose: true},
		},
		{
			name: "empty detail becomes placeholder",
			text: "@po พรุ่งนี้",
			want: command.Assign{AssigneeRef: "po", Detail: "-", DeadlinePhrase: "พรุ่งนี้", Deadline: "2024-05-02T09:00:00", Loose: true},
		},
		{
			name: "urgent word inside a longer word",
			text: "@po รีบูตเซิร์ฟเวอร์",
			want: command.Assign{AssigneeRef: "po", Detail: "รีบูตเซิร์ฟเวอร์", Loose: true},
		},
		{
			name: "url colon is not a name separator",
			text: "@po เปิดไฟล์ https://example.com/a",
			want: command.Assign{AssigneeRef: "po", Detail: "เปิดไฟล์ https://example.com/a", Loose: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseAt(tt.text, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_StructuredAssign(t *testing.T) {
	p, now := newParser(t)

	tests := []struct {
		name string
		text string
		want command.Assign
	}{
		{
			name: "deadline and urgent note",
			text: "@po: งาน | กำหนดส่ง: 12/03 14:00 | note: ด่วน",
			want: command.Assign{AssigneeRef: "po", Detail: "งาน", DeadlinePhrase: "12/03 14:00", Deadline: "2024-03-12T14:00:00", Note: "[URGENT]"},
		},
		{
			name: "semicolons and english labels",
			text: "@po: แก้บั๊ก urgent; due: พรุ่งนี้; note: repo หลัก",
			want: command.Assign{AssigneeRef: "po", Detail: "แก้บั๊ก", DeadlinePhrase: "พรุ่งนี้", Deadline: "2024-05-02T09:00:00", Note: "[URGENT] repo หลัก"},
		},
		{
			name: "calm note",
			text: "@po: ล้างรถ ด้วย | note: ไม่รีบ",
			want: command.Assign{AssigneeRef: "po", Detail: "ล้างรถ", Note: "ไม่รีบ"},
		},
		{
			name: "urgent beats calm",
			text: "@po: งานด่วน | note: ไม่รีบ",
			want: command.Assign{AssigneeRef: "po", Detail: "งาน", Note: "[URGENT]"},
		},
		{
			name: "existing tag is kept once",
			text: "@po: งาน | กำหนดส่ง: 2024-05-02T09:00:00 | note: [URGENT] ไฟล์ ai",
			want: command.Assign{AssigneeRef: "po", Detail: "งาน", DeadlinePhrase: "2024-05-02T09:00:00", Deadline: "2024-05-02T09:00:00", Note: "[URGENT] ไฟล์ ai"},
		},
		{
			name: "unresolvable deadline passes through",
			text: "@po: งาน | กำหนดส่ง: สิ้นเดือน",
			want: command.Assign{AssigneeRef: "po", Detail: "งาน", DeadlinePhrase: "สิ้นเดือน", Deadline: "สิ้นเดือน"},
		},
		{
			name: "name with a space",
			text: "@Po Sakda: งาน | กำหนดส่ง: พรุ่งนี้",
			want: command.Assign{AssigneeRef: "Po Sakda", Detail: "งาน", DeadlinePhrase: "พรุ่งนี้", Deadline: "2024-05-02T09:00:00"},
		},
		{
			name: "thai full name",
			text: "@สมชาย ใจดี: ทำรายงาน",
			want: command.Assign{AssigneeRef: "สมชาย ใจดี", Detail: "ทำรายงาน"},
		},
		{
			name: "space before colon is trimmed",
			text: "@Po Sakda ：งาน",
			want: command.Assign{AssigneeRef: "Po Sakda", Detail: "งาน"},
		},
		{
			name: "urgent word inside a longer word",
			text: "@po: รีบูตเซิร์ฟเวอร์",
			want: command.Assign{AssigneeRef: "po", Detail: "รีบูตเซิร์ฟเวอร์"},
		},
		{
			name: "standalone urgent word next to a longer word",
			text: "@po: รีบูตเซิร์ฟเวอร์ รีบ",
			want: command.Assign{AssigneeRef: "po", Detail: "รีบูตเซิร์ฟเวอร์", Note: "[URGENT]"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.ParseAt(tt.text, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Register(t *testing.T) {
	p, now := newParser(t)

	tests := []struct {
		name string
		text string
		want command.Register
	}{
		{name: "whitespace with role", text: "ลงทะเบียน po ปอ อนุชา user", want: command.Register{Username: "po", RealName: "ปอ อนุชา", Role: "user"}},
		{name: "whitespace without role", text: "สมัคร: po ปอ อนุชา", want: command.Register{Username: "po", RealName: "ปอ อนุชา"}},
		{name: "comma separated", text: "ลงทะเบียน: test,ทดสอบ ระบบ,หัวหน้า", want: command.Register{Username: "test", RealName: "ทดสอบ ระบบ", Role: "หัวหน้า"}},
		{name: "pipe separated", text: "register test | Test User", want: command.Register{Username: "test", RealName: "Test User"}},
		{name: "single token", text: "signup po", want: command.Register{Username: "po"}},
		{name: "empty payload", text: "ลงทะเบียน", want: command.Register{}},
		{name: "uppercase role word", text: "REGISTER po Po Dev", want: command.Register{Username: "po", RealName: "Po", Role: "dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ParseAt(tt.text, now))
		})
	}
}

func TestParse_TaskCommands(t *testing.T) {
	p, now := newParser(t)

	tests := []struct {
		name string
		text string
		want command.Intent
	}{
		{name: "done", text: "done TASK_ab12CD34", want: command.SetStatus{TaskID: "TASK_ab12CD34", Status: model.StatusDone}},
		{name: "done uppercase", text: "DONE TASK_ab12CD34", want: command.SetStatus{TaskID: "TASK_ab12CD34", Status: model.StatusDone}},
		{name: "doing", text: "กำลังดำเนินการ TASK_1", want: command.SetStatus{TaskID: "TASK_1", Status: model.StatusDoing}},
		{
			name: "set deadline",
			text: "ตั้งกำหนดส่ง TASK_1: พรุ่งนี้ 17:30",
			want: command.SetDeadline{TaskID: "TASK_1", DeadlinePhrase: "พรุ่งนี้ 17:30", Deadline: "2024-05-02T17:30:00"},
		},
		{
			name: "edit deadline alias",
			text: "แก้เดดไลน์ TASK_1：+2d",
			want: command.SetDeadline{TaskID: "TASK_1", DeadlinePhrase: "+2d", Deadline: "2024-05-03T17:30:00"},
		},
		{name: "add note", text: "เพิ่มโน้ต TASK_1: ขอไฟล์ ai", want: command.AddNote{TaskID: "TASK_1", Note: "ขอไฟล์ ai"}},
		{name: "edit detail", text: "แก้รายละเอียด TASK_1: ทำป้ายใหม่", want: command.EditDetail{TaskID: "TASK_1", Detail: "ทำป้ายใหม่"}},
		{name: "reassign with at", text: "เปลี่ยนผู้รับ TASK_1: @mint", want: command.Reassign{TaskID: "TASK_1", AssigneeRef: "mint"}},
		{name: "reassign without at", text: "เปลี่ยนผู้รับ TASK_1: mint", want: command.Reassign{TaskID: "TASK_1", AssigneeRef: "mint"}},
		{name: "remind thai", text: "เตือน TASK_1", want: command.Remind{TaskID: "TASK_1"}},
		{name: "remind english", text: "remind TASK_1", want: command.Remind{TaskID: "TASK_1"}},
		{name: "confirm without id", text: "ยืนยันมอบหมาย", want: command.ConfirmDraft{}},
		{name: "confirm with id", text: "ยืนยันมอบหมาย TMP_a1B2c3", want: command.ConfirmDraft{DraftID: "TMP_a1B2c3"}},
		{name: "cancel with id", text: "ยกเลิกมอบหมาย TMP_a1B2c3", want: command.CancelDraft{DraftID: "TMP_a1B2c3"}},
		{name: "next page", text: "ถัดไป →", want: command.PageNext{}},
		{name: "previous page", text: "← ก่อนหน้า", want: command.PagePrev{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ParseAt(tt.text, now))
		})
	}
}

func TestParse_Menu(t *testing.T) {
	p, now := newParser(t)

	tests := []struct {
		text string
		want command.Intent
	}{
		{text: "ช่วยเหลือ", want: command.Help{}},
		{text: "สั่งงาน", want: command.AssignHelp{}},
		{text: "ดูผู้ใช้งานทั้งหมด", want: command.ListUsers{}},
		{text: "ดูงานค้างทั้งหมด", want: command.ListPending{}},
		{text: "งานที่ฉันสั่ง", want: command.ListAssigned{}},
		{text: "ดูงานที่ฉันสั่ง", want: command.ListAssigned{}},
		{text: "งานคงเหลือวันนี้", want: command.ListToday{}},
		{text: "งานของฉันวันนี้", want: command.ListToday{}},
		{text: "ดูงานของฉันทั้งหมด: 01/05/2024 - 31/05/2024", want: command.ListRange{From: "01/05/2024", To: "31/05/2024"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ParseAt(tt.text, now))
		})
	}
}

func TestParse_Unrecognized(t *testing.T) {
	p, now := newParser(t)

	for _, text := range []string{
		"สวัสดี",
		"done",
		"done TMP_abc",
		"ยืนยันมอบหมาย TASK_1",
		"@: งาน",
		"สมัครใจทำ",
		"เตือน task",
	} {
		t.Run(text, func(t *testing.T) {
			got := p.ParseAt(text, now)
			assert.Equal(t, command.KindUnrecognized, got.Kind())
		})
	}
	assert.Equal(t, command.Unrecognized{}, p.ParseAt("   ", now))
}

func TestParse_MissingColonFallsThroughToLoose(t *testing.T) {
	p, now := newParser(t)

	got, ok := p.ParseAt("@po งาน | กำหนดส่ง: พรุ่งนี้", now).(command.Assign)
	require.True(t, ok)
	assert.True(t, got.Loose)
	assert.Equal(t, "po", got.AssigneeRef)
	assert.Equal(t, "2024-05-02T09:00:00", got.Deadline)
}
