package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User ผู้เข้าร่วมงาน (participant)
type User struct {
	ID           string  `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name" example:"Somchai Jaidee"`
	Email        string  `json:"email" bson:"email" example:"somchai@example.com"`
	EnrollmentNo *string `json:"enrollmentNo,omitempty" bson:"enrollmentNo,omitempty" example:"64000001"`
	PhoneNumber  *string `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty" example:"0812345678"`
	IsTemporary  bool    `json:"isTemporary,omitempty" bson:"-"`
}

// UserRef ข้อมูลย่อของ user ที่ resolve มากับ attendance record
type UserRef struct {
	ID    string `json:"id" bson:"_id"`
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
}

// Ref คืนค่า UserRef ของ user
func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Group กลุ่มผู้เข้าร่วมของ GROUP event หัวหน้าไม่ถูกนับซ้ำใน members
type Group struct {
	GroupID string `json:"groupId" bson:"groupId"`
	Leader  User   `json:"leader" bson:"leader"`
	Members []User `json:"members" bson:"members"`
}

// UserDoc เอกสาร user ใน MongoDB
type UserDoc struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	EnrollmentNo *string            `json:"enrollmentNo,omitempty" bson:"enrollmentNo,omitempty"`
	PhoneNumber  *string            `json:"phoneNumber,omitempty" bson:"phoneNumber,omitempty"`
}

// AsUser แปลงเอกสารเป็น participant ฝั่ง API
func (d UserDoc) AsUser() User {
	return User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		EnrollmentNo: d.EnrollmentNo,
		PhoneNumber:  d.PhoneNumber,
	}
}
