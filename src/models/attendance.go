package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"
	StatusPartial = "PARTIAL"

	ActionEntry = "entry"
	ActionExit  = "exit"
)

// ValidStatus ตรวจว่า status อยู่ในชุดที่รองรับ
func ValidStatus(s string) bool {
	return s == StatusPresent || s == StatusAbsent || s == StatusPartial
}

// Attendance เอกสารเช็คชื่อใน MongoDB หนึ่งรายการต่อ (userId, eventId)
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	EventID   primitive.ObjectID `bson:"eventId"`
	EntryTime *time.Time         `bson:"entryTime"`
	ExitTime  *time.Time         `bson:"exitTime"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// AttendanceRecord รูปแบบบน wire userId ถูก resolve เป็น {id, name, email} แล้ว
type AttendanceRecord struct {
	ID        string     `json:"id"`
	UserID    UserRef    `json:"userId"`
	EventID   string     `json:"eventId"`
	EntryTime *time.Time `json:"entryTime,omitempty"`
	ExitTime  *time.Time `json:"exitTime,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// AsRecord ประกอบ record บน wire จากเอกสารและ user ที่ resolve แล้ว
func (a Attendance) AsRecord(user UserRef) AttendanceRecord {
	return AttendanceRecord{
		ID:        a.ID.Hex(),
		UserID:    user,
		EventID:   a.EventID.Hex(),
		EntryTime: a.EntryTime,
		ExitTime:  a.ExitTime,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
