package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EventTypeSolo  = "SOLO"
	EventTypeGroup = "GROUP"
)

// Event งานแข่งขันใน fest
type Event struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" example:"Code Relay"`
	EventType string             `json:"eventType" bson:"eventType" example:"SOLO"`
	MinMember *int               `json:"minMember,omitempty" bson:"minMember,omitempty" example:"2"`
	MaxMember *int               `json:"maxMember,omitempty" bson:"maxMember,omitempty" example:"4"`
	EndAt     *time.Time         `json:"endAt,omitempty" bson:"endAt,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// MinMembersInGroup จำนวนสมาชิกต่ำสุด ไม่รวมหัวหน้ากลุ่ม
func (e Event) MinMembersInGroup() int {
	if e.MinMember == nil {
		return 0
	}
	if n := *e.MinMember - 1; n > 0 {
		return n
	}
	return 0
}

// MaxMembersInGroup จำนวนสมาชิกสูงสุด ไม่รวมหัวหน้ากลุ่ม
func (e Event) MaxMembersInGroup() int {
	if e.MaxMember == nil {
		return 0
	}
	if n := *e.MaxMember - 1; n > 0 {
		return n
	}
	return 0
}
