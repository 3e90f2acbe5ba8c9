package attendances

import (
	"time"

	"Backend-Aavishkar/src/models"
)

// กติกาการเปลี่ยนสถานะของ record หนึ่งรายการ แยกออกมาให้ไม่ผูกกับ MongoDB
//
//	entry:  ตั้ง entryTime ครั้งแรกเท่านั้น แล้ว status = PRESENT
//	exit:   ต้องมี entryTime และยังไม่มี exitTime
//	override = ABSENT: ล้าง entryTime และ exitTime ทั้งคู่

// applyEntry บันทึกเวลาเข้า คืน false ถ้า record เข้าแล้ว (no-op)
func applyEntry(a *models.Attendance, now time.Time) bool {
	if a.EntryTime != nil {
		return false
	}
	a.EntryTime = &now
	a.Status = models.StatusPresent
	return true
}

// applyExit บันทึกเวลาออก คืน false ถ้ายังไม่เข้า หรือออกไปแล้ว (no-op)
func applyExit(a *models.Attendance, now time.Time) bool {
	if a.EntryTime == nil || a.ExitTime != nil {
		return false
	}
	a.ExitTime = &now
	a.Status = models.StatusPresent
	return true
}

// applyStatus เปลี่ยนสถานะด้วย override ถ้าเป็น ABSENT ล้างเวลาเข้าออกทิ้ง
func applyStatus(a *models.Attendance, status string) {
	a.Status = status
	if status == models.StatusAbsent {
		a.EntryTime = nil
		a.ExitTime = nil
	}
}
