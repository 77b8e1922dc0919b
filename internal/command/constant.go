package command

// Navigation tokens sent back by the pager quick replies.
const (
	TokenNext = "ถัดไป →"
	TokenPrev = "← ก่อนหน้า"
)

// Menu literals.
const (
	MenuHelp       = "ช่วยเหลือ"
	MenuAssignHelp = "สั่งงาน"
	MenuUsers      = "ดูผู้ใช้งานทั้งหมด"
	MenuPending    = "ดูงานค้างทั้งหมด"
	MenuAssigned   = "งานที่ฉันสั่ง"
	MenuToday      = "งานของฉันวันนี้"
)

// Verbs used in generated button text.
const (
	VerbDone        = "done"
	VerbDoing       = "กำลังดำเนินการ"
	VerbConfirm     = "ยืนยันมอบหมาย"
	VerbCancel      = "ยกเลิกมอบหมาย"
	LabelDeadline   = "กำหนดส่ง"
	LabelNote       = "note"
	UrgentTag       = "[URGENT]"
	CalmAnnotation  = "ไม่รีบ"
	PlaceholderText = "-"
)
