package line

import (
	"fmt"
	"strings"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/model"
)

const helpText = `วิธีใช้งาน (สั้นๆ)

ลงทะเบียน
• ลงทะเบียน po ปอ อนุชา user

สั่งงาน
• @po ปรับรายงาน พรุ่งนี้ 09:00
• @test ทำป้าย ก่อนบ่าย 3
• @po: งาน
  | กำหนดส่ง: 12/03 14:00
  | note: ไม่รีบ

เปลี่ยนสถานะ
• done TASK_xxxxxxxx
• กำลังดำเนินการ TASK_xxxxxxxx

เดดไลน์ / โน้ต
• ตั้งกำหนดส่ง TASK_xxxxxxxx: พรุ่งนี้ 17:30
• เพิ่มโน้ต TASK_xxxxxxxx: ขอไฟล์ ai
• แก้รายละเอียด TASK_xxxxxxxx: ข้อความใหม่
• เปลี่ยนผู้รับ TASK_xxxxxxxx: @username
• เตือน TASK_xxxxxxxx

ดูรายการ
• ดูงานค้างทั้งหมด
• งานที่ฉันสั่ง
• งานของฉันวันนี้
• ดูผู้ใช้งานทั้งหมด
• ดูงานของฉันทั้งหมด: 01/05/2024 - 31/05/2024`

const (
	textUnrecognized     = "ไม่เข้าใจคำสั่ง พิมพ์ \"ช่วยเหลือ\" เพื่อดูวิธีใช้"
	textRegisterUsage    = "รูปแบบ: ลงทะเบียน: ชื่อผู้ใช้,ชื่อ–นามสกุล[,บทบาท]\nตัวอย่าง: ลงทะเบียน: test,ทดสอบ ระบบ,user"
	textAmbiguous        = "ไม่ชัดเจนว่าหมายถึงใคร เลือกจากด้านล่างได้เลย:"
	textDraftCancelled   = "ยกเลิกร่างแล้ว"
	textNoCursor         = "ไม่มีรายการให้เลื่อนหน้า"
	textNoPending        = "ไม่มีงานค้าง 🎉"
	textNoAssigned       = "ยังไม่มีงานที่คุณสั่ง"
	textNoToday          = "วันนี้ไม่มีงานคงเหลือ 🎉"
	textNoUsers          = "ยังไม่มีผู้ใช้ในระบบ"
	textNoRange          = "ไม่พบงานในช่วงที่ระบุ"
	textRemindSent       = "ส่งการ์ดเตือนให้ผู้รับแล้ว ✅"
	textPresetUrgent     = "ตั้งค่าเร่งด่วนสำหรับคำสั่งถัดไปแล้ว ✅"
	textPresetDueFormat  = "ตั้งเดดไลน์ “%s” สำหรับคำสั่งถัดไปแล้ว ✅"
	textWelcome          = "ยินดีต้อนรับ 👋\nลงทะเบียนก่อนใช้งาน:\n• ลงทะเบียน: username ชื่อ–นามสกุล [บทบาท]\n  เช่น ลงทะเบียน test ทดสอบ ระบบ user"
	altTextList          = "รายการ"
	altTextReminder      = "งานที่ถูกเตือน"
	altTextPreview       = "ร่างการมอบหมายงาน"
	assignHelpSampleSize = 15
)

// assignHelp lists the assignment examples and some active users to pick.
func assignHelp(users []model.User) string {
	lines := []string{
		"📝 สั่งงาน — พิมพ์แบบนี้",
		"",
		"ตัวอย่าง (พิมพ์เล็ก/ใหญ่ และเว้นวรรคได้):",
		"• @po ปรับรายงาน พรุ่งนี้ 09:00",
		"• @test ขอทำป้ายหน้าร้าน ก่อนบ่าย 3 นะ",
		"• @po ทำ rich menu วันนี้ ด่วน",
		"",
		"เกร็ดสั้น ๆ:",
		"• ไม่ใส่เวลา → ใช้ 17:30 อัตโนมัติ",
		"• \"ก่อนบ่าย 3\" = วันนี้ 15:00",
		"• ใส่คำว่า ด่วน/urgent → ติดแท็ก [URGENT]",
	}

	var active []model.User
	for _, u := range users {
		if u.IsActive() {
			active = append(active, u)
		}
	}
	if len(active) > 0 {
		lines = append(lines, "", "ผู้รับงานในระบบ (บางส่วน):")
	}
	for i, u := range active {
		if i == assignHelpSampleSize {
			lines = append(lines, fmt.Sprintf("… และอีก %d คน", len(active)-assignHelpSampleSize))
			break
		}
		handle := "@" + u.Username
		if u.Username == "" {
			handle = "@" + shortID(u.ID)
		}
		line := fmt.Sprintf("• %s (%s)", handle, u.Role.Label())
		if u.RealName != "" {
			line += " – " + u.RealName
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// withDeadline appends a deadline line when one is set.
func withDeadline(text, deadline string) string {
	if deadline == "" {
		return text
	}
	return text + "\nกำหนดส่ง: " + dueText(deadline)
}

func presetDueText(key string) string {
	label := "พรุ่งนี้ 09:00"
	if key == draft.PresetDueToday1730 {
		label = "วันนี้ 17:30"
	}
	return fmt.Sprintf(textPresetDueFormat, label)
}
