package view

import (
	"math"
	"strings"

	"Backend-Aavishkar/src/models"
)

// Session สถานะหน้าจอเช็คชื่อของ event เดียวต่อหนึ่ง browser session
// รายการชั่วคราวและแถวที่ซ่อนอยู่เฉพาะในหน่วยความจำ refresh แล้วหายหมด
// ตารางที่แสดงเป็นฟังก์ชันล้วนของ (roster, attendance, temp, hidden, q)
type Session struct {
	Event models.Event

	soloRoster  []models.User
	groupRoster []models.Group
	attendance  []models.AttendanceRecord // persisted, dedup แล้ว

	tempSolo    []models.User
	tempGroups  []models.Group
	tempRecords []models.AttendanceRecord

	hidden map[string]bool // key = RowKey.String()
}

// NewSession สร้าง session เปล่าของ event
func NewSession(event models.Event) *Session {
	return &Session{
		Event:  event,
		hidden: map[string]bool{},
	}
}

// LoadParticipants เก็บ roster ที่ fetch มา dedup ทันที
func (s *Session) LoadParticipants(solo []models.User, groups []models.Group) {
	s.soloRoster = dedupSolo(solo)
	s.groupRoster = dedupGroups(groups)
}

// LoadAttendance แทนที่ snapshot ของ attendance ฝั่ง server ทั้งก้อน
// เรียกซ้ำหลังทุก mutation ที่สำเร็จ ไม่แตะ record ชั่วคราว
func (s *Session) LoadAttendance(records []models.AttendanceRecord) {
	s.attendance = dedupAttendance(records)
}

// RecordFor หา record ของอีเมลนี้ เทียบด้วย lowercase(email)
// ดูจาก record ฝั่ง server ก่อน แล้วค่อยดู record ชั่วคราว
func (s *Session) RecordFor(email string) *models.AttendanceRecord {
	key := strings.ToLower(email)
	for i := range s.attendance {
		if strings.ToLower(s.attendance[i].UserID.Email) == key {
			return &s.attendance[i]
		}
	}
	for i := range s.tempRecords {
		if strings.ToLower(s.tempRecords[i].UserID.Email) == key {
			return &s.tempRecords[i]
		}
	}
	return nil
}

// IsTemporary แถวนี้เป็นผู้เข้าร่วมชั่วคราวหรือไม่
func (s *Session) IsTemporary(key RowKey) bool {
	for _, p := range s.tempSolo {
		if strings.ToLower(p.Email) == key.email {
			return true
		}
	}
	for _, g := range s.tempGroups {
		if strings.ToLower(g.Leader.Email) == key.email {
			return true
		}
		for _, m := range g.Members {
			if strings.ToLower(m.Email) == key.email {
				return true
			}
		}
	}
	return false
}

// CanMutate ปุ่ม entry/exit/override ใช้ได้เฉพาะแถวที่ server รู้จัก
func (s *Session) CanMutate(key RowKey) bool {
	return !s.IsTemporary(key)
}

// Delete ลบแถวออกจากตาราง
// แถวชั่วคราวถูกลบจริงพร้อม record ของมัน แถวปกติแค่ซ่อน ไม่แตะข้อมูลฝั่ง server
func (s *Session) Delete(key RowKey) {
	if s.IsTemporary(key) {
		s.removeTemporary(key)
		return
	}
	s.hidden[key.String()] = true
}

// Hidden แถวนี้ถูกซ่อนอยู่หรือไม่
func (s *Session) Hidden(key RowKey) bool {
	return s.hidden[key.String()]
}

func (s *Session) removeTemporary(key RowKey) {
	if key.kind == kindSolo {
		for i, p := range s.tempSolo {
			if strings.ToLower(p.Email) == key.email {
				s.tempSolo = append(s.tempSolo[:i], s.tempSolo[i+1:]...)
				s.removeTempRecord(key.email)
				return
			}
		}
		return
	}

	for i, g := range s.tempGroups {
		if g.GroupID != key.groupID {
			continue
		}
		if key.kind == kindLeader && strings.ToLower(g.Leader.Email) == key.email {
			// ลบหัวหน้า = ลบทั้งกลุ่ม กลุ่มไม่มีหัวหน้าไม่มีความหมาย
			s.removeTempRecord(strings.ToLower(g.Leader.Email))
			for _, m := range g.Members {
				s.removeTempRecord(strings.ToLower(m.Email))
			}
			s.tempGroups = append(s.tempGroups[:i], s.tempGroups[i+1:]...)
			return
		}
		if key.kind == kindMember {
			for j, m := range g.Members {
				if strings.ToLower(m.Email) == key.email {
					s.tempGroups[i].Members = append(g.Members[:j], g.Members[j+1:]...)
					s.removeTempRecord(key.email)
					return
				}
			}
		}
	}
}

func (s *Session) removeTempRecord(email string) {
	for i, r := range s.tempRecords {
		if strings.ToLower(r.UserID.Email) == email {
			s.tempRecords = append(s.tempRecords[:i], s.tempRecords[i+1:]...)
			return
		}
	}
}

// knownEmails อีเมลทั้งหมดที่มีอยู่แล้ว ทั้ง roster จริงและรายการชั่วคราว
func (s *Session) knownEmails() map[string]bool {
	emails := map[string]bool{}
	add := func(e string) { emails[strings.ToLower(e)] = true }

	for _, p := range s.soloRoster {
		add(p.Email)
	}
	for _, g := range s.groupRoster {
		add(g.Leader.Email)
		for _, m := range g.Members {
			add(m.Email)
		}
	}
	for _, p := range s.tempSolo {
		add(p.Email)
	}
	for _, g := range s.tempGroups {
		add(g.Leader.Email)
		for _, m := range g.Members {
			add(m.Email)
		}
	}
	return emails
}

// Counters ตัวเลขบนการ์ดสรุป คิดจากแถวที่มองเห็น (หลังซ่อน ก่อน search)
type Counters struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Rate    int `json:"rate"`
}

// Counters คำนวณ Total, Present, Absent และอัตราเข้าร่วมเป็นเปอร์เซ็นต์
func (s *Session) Counters() Counters {
	v := s.View("")

	visibleEmails := map[string]bool{}
	total := 0
	for _, row := range v.Rows {
		visibleEmails[row.Key.email] = true
		total++
	}
	for _, g := range v.Groups {
		if g.Leader != nil {
			visibleEmails[g.Leader.Key.email] = true
			total++
		}
		for _, row := range g.Members {
			visibleEmails[row.Key.email] = true
			total++
		}
	}

	present := 0
	for _, r := range s.attendance {
		if r.Status == models.StatusPresent && visibleEmails[strings.ToLower(r.UserID.Email)] {
			present++
		}
	}
	for _, r := range s.tempRecords {
		if r.Status == models.StatusPresent && visibleEmails[strings.ToLower(r.UserID.Email)] {
			present++
		}
	}

	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(present) / float64(total) * 100))
	}
	return Counters{
		Total:   total,
		Present: present,
		Absent:  total - present,
		Rate:    rate,
	}
}
