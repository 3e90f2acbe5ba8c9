package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Registration การลงทะเบียน SOLO event หนึ่งคนต่อหนึ่งรายการ
type Registration struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EventID          primitive.ObjectID `json:"eventId" bson:"eventId"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	RegistrationDate time.Time          `json:"registrationDate" bson:"registrationDate"`
}

// GroupRegistration การลงทะเบียน GROUP event หัวหน้า 1 คน สมาชิก 0..n คน
type GroupRegistration struct {
	ID               primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	EventID          primitive.ObjectID   `json:"eventId" bson:"eventId"`
	LeaderID         primitive.ObjectID   `json:"leaderId" bson:"leaderId"`
	MemberIDs        []primitive.ObjectID `json:"memberIds" bson:"memberIds"`
	RegistrationDate time.Time            `json:"registrationDate" bson:"registrationDate"`
}
