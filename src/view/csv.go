package view

import (
	"bytes"
	"encoding/csv"

	"Backend-Aavishkar/src/models"
)

var csvHeader = []string{"Name", "Email", "Enrollment No", "Phone Number", "Signature"}

// ช่อง Signature เว้นว่างไว้ให้เซ็นชื่อบนกระดาษ
// enrollment/เบอร์โทรที่ไม่มีข้อมูลพิมพ์เป็น — (em dash)
const missingField = "—"

// ExportCSV สร้างไฟล์ CSV ของตารางปัจจุบัน (หลังซ่อน ไม่สน search)
// คืน (เนื้อไฟล์, ชื่อไฟล์, error) field ถูก quote ตาม RFC 4180
func (s *Session) ExportCSV() ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, "", err
	}

	v := s.View("")
	if v.EventType == models.EventTypeGroup {
		for _, g := range v.Groups {
			if g.Leader != nil {
				if err := w.Write(csvRow(g.Leader.Participant, " (Leader)")); err != nil {
					return nil, "", err
				}
			}
			for _, row := range g.Members {
				if err := w.Write(csvRow(row.Participant, "")); err != nil {
					return nil, "", err
				}
			}
			// แถวว่างคั่นระหว่างกลุ่ม
			if err := w.Write([]string{""}); err != nil {
				return nil, "", err
			}
		}
	} else {
		for _, row := range v.Rows {
			if err := w.Write(csvRow(row.Participant, "")); err != nil {
				return nil, "", err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	name := s.Event.Name
	if name == "" {
		name = "event"
	}
	return buf.Bytes(), name + "_attendance.csv", nil
}

func csvRow(p models.User, nameSuffix string) []string {
	enrollment := missingField
	if p.EnrollmentNo != nil && *p.EnrollmentNo != "" {
		enrollment = *p.EnrollmentNo
	}
	phone := missingField
	if p.PhoneNumber != nil && *p.PhoneNumber != "" {
		phone = *p.PhoneNumber
	}
	return []string{p.Name + nameSuffix, p.Email, enrollment, phone, ""}
}
