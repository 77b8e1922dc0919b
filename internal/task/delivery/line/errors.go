package line

import (
	"errors"

	"line-task-tracker/internal/draft"
	"line-task-tracker/internal/task"
)

const textGenericError = "เกิดข้อผิดพลาด กรุณาลองใหม่อีกครั้ง"

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrTaskNotFound):
		return "ไม่พบงานนั้นครับ"
	case errors.Is(err, task.ErrAssignerOnly):
		return "คำสั่งนี้ใช้ได้เฉพาะผู้สั่งงานครับ"
	case errors.Is(err, task.ErrNotParty):
		return "คุณไม่มีสิทธิ์อัปเดตงานนี้"
	case errors.Is(err, task.ErrNoAssigneeID):
		return "รายการนี้ไม่มี LINE ID ของผู้รับ จึงส่งเตือนไม่ได้"
	case errors.Is(err, task.ErrRegisterIncomplete):
		return textRegisterUsage
	case errors.Is(err, task.ErrInvalidRange):
		return "รูปแบบวันที่ไม่ถูกต้อง ตัวอย่าง: ดูงานของฉันทั้งหมด: 01/05/2024 - 31/05/2024"
	case errors.Is(err, draft.ErrDraftNotFound):
		return "ไม่พบรายการร่าง"
	case errors.Is(err, draft.ErrAssigneeNotFound):
		return "ไม่พบผู้รับ กรุณาใช้ @username"
	case errors.Is(err, draft.ErrUnknownPreset):
		return "ไม่รู้จักตัวช่วยนี้"
	case errors.Is(err, draft.ErrStoreFailure), errors.Is(err, task.ErrStoreFailure):
		return "บันทึกไม่สำเร็จ กรุณาลองใหม่อีกครั้ง"
	}
	return textGenericError
}
