package view

import (
	"time"

	"Backend-Aavishkar/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// helper ประกอบ fixture ให้ test ทุกไฟล์ใน package นี้

func user(name, email string) models.User {
	return models.User{ID: primitive.NewObjectID().Hex(), Name: name, Email: email}
}

func userFull(name, email, enrollmentNo, phoneNumber string) models.User {
	u := user(name, email)
	if enrollmentNo != "" {
		u.EnrollmentNo = &enrollmentNo
	}
	if phoneNumber != "" {
		u.PhoneNumber = &phoneNumber
	}
	return u
}

func record(email, status string, createdAt time.Time) models.AttendanceRecord {
	rec := models.AttendanceRecord{
		ID:        primitive.NewObjectID().Hex(),
		UserID:    models.UserRef{ID: primitive.NewObjectID().Hex(), Name: email, Email: email},
		Status:    status,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if status == models.StatusPresent {
		entry := createdAt
		rec.EntryTime = &entry
	}
	return rec
}

func soloEvent(name string) models.Event {
	return models.Event{
		ID:        primitive.NewObjectID(),
		Name:      name,
		EventType: models.EventTypeSolo,
	}
}

func groupEvent(name string, minMember, maxMember int) models.Event {
	return models.Event{
		ID:        primitive.NewObjectID(),
		Name:      name,
		EventType: models.EventTypeGroup,
		MinMember: &minMember,
		MaxMember: &maxMember,
	}
}

func group(groupID string, leader models.User, members ...models.User) models.Group {
	return models.Group{GroupID: groupID, Leader: leader, Members: members}
}
