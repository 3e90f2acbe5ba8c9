package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"Backend-Aavishkar/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

var (
	// ErrValidation ข้อมูลที่กรอกไม่ครบหรือไม่ถูกต้อง
	ErrValidation = errors.New("validation failed")
	// ErrDuplicateEmail อีเมลซ้ำกับแถวที่มีอยู่แล้ว
	ErrDuplicateEmail = errors.New("email already exists")
)

// SoloInput ฟอร์มเพิ่มผู้เข้าร่วมชั่วคราวของ SOLO event
type SoloInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	EnrollmentNo string `json:"enrollmentNo"`
	PhoneNumber  string `json:"phoneNumber"`
}

// GroupMemberInput หนึ่งคนในฟอร์มเพิ่มกลุ่มชั่วคราว
type GroupMemberInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	EnrollmentNo string `json:"enrollmentNo"`
	PhoneNumber  string `json:"phoneNumber"`
}

// GroupInput ฟอร์มเพิ่มกลุ่มชั่วคราวของ GROUP event
type GroupInput struct {
	Leader  GroupMemberInput   `json:"leader" validate:"required"`
	Members []GroupMemberInput `json:"members" validate:"dive"`
}

// AddSolo เพิ่มผู้เข้าร่วมชั่วคราวหนึ่งคน พร้อม record PRESENT สังเคราะห์
// ไม่ส่งอะไรไป server รายการอยู่แค่ใน session นี้
func (s *Session) AddSolo(in SoloInput) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	if err := validate.Struct(in); err != nil {
		return models.User{}, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	if s.knownEmails()[strings.ToLower(in.Email)] {
		return models.User{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, in.Email)
	}

	participant := newTempParticipant(in.Name, in.Email, in.EnrollmentNo, in.PhoneNumber)
	s.tempSolo = append(s.tempSolo, participant)
	s.tempRecords = append(s.tempRecords, s.newTempRecord(participant))
	return participant, nil
}

// AddGroup เพิ่มกลุ่มชั่วคราว สมาชิก (ไม่รวมหัวหน้า) ต้องอยู่ในช่วง
// [minMember-1, maxMember-1] ของ event และอีเมลห้ามซ้ำทั้งในกลุ่มและกับของเดิม
func (s *Session) AddGroup(in GroupInput) (models.Group, error) {
	in.Leader.Name = strings.TrimSpace(in.Leader.Name)
	in.Leader.Email = strings.TrimSpace(in.Leader.Email)
	for i := range in.Members {
		in.Members[i].Name = strings.TrimSpace(in.Members[i].Name)
		in.Members[i].Email = strings.TrimSpace(in.Members[i].Email)
	}
	if err := validate.Struct(in); err != nil {
		return models.Group{}, fmt.Errorf("%w: every person needs a name and email", ErrValidation)
	}

	min := s.Event.MinMembersInGroup()
	max := s.Event.MaxMembersInGroup()
	if len(in.Members) < min || (s.Event.MaxMember != nil && len(in.Members) > max) {
		return models.Group{}, fmt.Errorf("%w: group must have %d-%d members excluding the leader",
			ErrValidation, min, max)
	}

	// อีเมลในฟอร์มต้องไม่ซ้ำกันเอง และไม่ชนกับแถวที่มีอยู่
	known := s.knownEmails()
	submitted := map[string]bool{}
	for _, person := range append([]GroupMemberInput{in.Leader}, in.Members...) {
		key := strings.ToLower(person.Email)
		if submitted[key] || known[key] {
			return models.Group{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, person.Email)
		}
		submitted[key] = true
	}

	group := models.Group{
		GroupID: "temp_group_" + uuid.NewString(),
		Leader:  newTempParticipant(in.Leader.Name, in.Leader.Email, in.Leader.EnrollmentNo, in.Leader.PhoneNumber),
		Members: []models.User{},
	}
	for _, m := range in.Members {
		group.Members = append(group.Members, newTempParticipant(m.Name, m.Email, m.EnrollmentNo, m.PhoneNumber))
	}

	s.tempGroups = append(s.tempGroups, group)
	s.tempRecords = append(s.tempRecords, s.newTempRecord(group.Leader))
	for _, m := range group.Members {
		s.tempRecords = append(s.tempRecords, s.newTempRecord(m))
	}
	return group, nil
}

func newTempParticipant(name, email, enrollmentNo, phoneNumber string) models.User {
	p := models.User{
		ID:          "temp_" + uuid.NewString(),
		Name:        name,
		Email:       email,
		IsTemporary: true,
	}
	if enrollmentNo != "" {
		p.EnrollmentNo = &enrollmentNo
	}
	if phoneNumber != "" {
		p.PhoneNumber = &phoneNumber
	}
	return p
}

// record สังเคราะห์ของคนชั่วคราว นับเป็น PRESENT ตั้งแต่วินาทีที่เพิ่ม
func (s *Session) newTempRecord(p models.User) models.AttendanceRecord {
	now := time.Now()
	return models.AttendanceRecord{
		ID:        "temp_rec_" + uuid.NewString(),
		UserID:    p.Ref(),
		EventID:   s.Event.ID.Hex(),
		EntryTime: &now,
		Status:    models.StatusPresent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
