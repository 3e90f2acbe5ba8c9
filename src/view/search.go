package view

import (
	"strings"

	"Backend-Aavishkar/src/models"
)

// Row แถวหนึ่งแถวของตารางที่ reconcile แล้ว
type Row struct {
	Key         RowKey
	Participant models.User
	Record      *models.AttendanceRecord
}

// GroupRows กลุ่มหนึ่งกลุ่มบนตาราง Leader เป็น nil ถ้าแถวหัวหน้าถูกซ่อน
type GroupRows struct {
	GroupID string
	Leader  *Row
	Members []Row
}

// View ผลลัพธ์การ reconcile SOLO ใช้ Rows, GROUP ใช้ Groups
type View struct {
	EventType string
	Rows      []Row
	Groups    []GroupRows
}

// View รวม roster + attendance + รายการชั่วคราว แล้วตัดแถวที่ซ่อน
// และกรองตาม q (substring, ไม่สนตัวพิมพ์) รายการชั่วคราวต่อท้ายของจริงเสมอ
func (s *Session) View(q string) View {
	q = strings.ToLower(strings.TrimSpace(q))

	if s.Event.EventType == models.EventTypeGroup {
		return View{EventType: models.EventTypeGroup, Groups: s.groupView(q)}
	}
	return View{EventType: models.EventTypeSolo, Rows: s.soloView(q)}
}

func (s *Session) soloView(q string) []Row {
	composite := append(append([]models.User{}, s.soloRoster...), s.tempSolo...)

	rows := []Row{}
	for _, p := range composite {
		key := SoloRow(p.Email)
		if s.hidden[key.String()] {
			continue
		}
		if q != "" && !matches(p, q) {
			continue
		}
		rows = append(rows, Row{Key: key, Participant: p, Record: s.RecordFor(p.Email)})
	}
	return rows
}

func (s *Session) groupView(q string) []GroupRows {
	composite := append(append([]models.Group{}, s.groupRoster...), s.tempGroups...)

	groups := []GroupRows{}
	for _, g := range composite {
		leaderKey := LeaderRow(g.Leader.Email, g.GroupID)
		leaderHidden := s.hidden[leaderKey.String()]
		leaderMatch := q != "" && matches(g.Leader, q)

		// หัวหน้า match เห็นทั้งกลุ่ม ไม่งั้นเหลือเฉพาะสมาชิกที่ match
		members := []Row{}
		for _, m := range g.Members {
			key := MemberRow(m.Email, g.GroupID)
			if s.hidden[key.String()] {
				continue
			}
			if q != "" && !leaderMatch && !matches(m, q) {
				continue
			}
			members = append(members, Row{Key: key, Participant: m, Record: s.RecordFor(m.Email)})
		}

		if q != "" && !leaderMatch && len(members) == 0 {
			continue // ไม่มีใคร match ตัดทั้งกลุ่ม
		}

		group := GroupRows{GroupID: g.GroupID, Members: members}
		if !leaderHidden {
			leader := Row{Key: leaderKey, Participant: g.Leader, Record: s.RecordFor(g.Leader.Email)}
			group.Leader = &leader
		}
		if group.Leader == nil && len(group.Members) == 0 {
			continue // ทุกแถวถูกซ่อน
		}
		groups = append(groups, group)
	}
	return groups
}

// matches เทียบ substring กับ name, email, enrollmentNo, phoneNumber
func matches(p models.User, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Email), q) {
		return true
	}
	if p.EnrollmentNo != nil && strings.Contains(strings.ToLower(*p.EnrollmentNo), q) {
		return true
	}
	if p.PhoneNumber != nil && strings.Contains(strings.ToLower(*p.PhoneNumber), q) {
		return true
	}
	return false
}
