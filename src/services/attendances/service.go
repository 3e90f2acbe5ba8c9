package attendances

import (
	"context"
	"errors"
	"time"

	DB "Backend-Aavishkar/src/database"
	"Backend-Aavishkar/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrInvalidID userId หรือ eventId ไม่ใช่ ObjectID
	ErrInvalidID = errors.New("invalid user or event ID")
	// ErrRecordNotFound ไม่มี record ให้ override
	ErrRecordNotFound = errors.New("attendance record not found")
)

// RecordAction บันทึก entry/exit ของ (userId, eventId) สร้าง record ใหม่ถ้ายังไม่มี
// entry ซ้ำหรือ exit ก่อน entry เป็น no-op คืน record เดิมโดยไม่แก้อะไร
func RecordAction(ctx context.Context, userID, eventID, action string) (*models.AttendanceRecord, error) {
	uID, err1 := primitive.ObjectIDFromHex(userID)
	eID, err2 := primitive.ObjectIDFromHex(eventID)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidID
	}

	record, err := recordAction(ctx, uID, eID, action)
	if err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, uID)
	if err != nil {
		return nil, err
	}
	result := record.AsRecord(user)
	return &result, nil
}

func recordAction(ctx context.Context, uID, eID primitive.ObjectID, action string) (*models.Attendance, error) {
	now := time.Now()
	filter := bson.M{"userId": uID, "eventId": eID}

	var attendance models.Attendance
	err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err == mongo.ErrNoDocuments {
		attendance = models.Attendance{
			ID:        primitive.NewObjectID(),
			UserID:    uID,
			EventID:   eID,
			Status:    models.StatusAbsent,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if action == models.ActionEntry {
			attendance.EntryTime = &now
			attendance.Status = models.StatusPresent
		}
		if _, err := DB.AttendanceCollection.InsertOne(ctx, attendance); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				// อีก request แทรกไปก่อนแล้ว (unique index บน userId+eventId)
				// เปลี่ยนไปเส้นทาง update หนึ่งครั้ง
				return updateAction(ctx, filter, action, now)
			}
			return nil, err
		}
		return &attendance, nil
	}
	if err != nil {
		return nil, err
	}

	return applyAndSave(ctx, filter, &attendance, action, now)
}

func updateAction(ctx context.Context, filter bson.M, action string, now time.Time) (*models.Attendance, error) {
	var attendance models.Attendance
	if err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&attendance); err != nil {
		return nil, err
	}
	return applyAndSave(ctx, filter, &attendance, action, now)
}

func applyAndSave(ctx context.Context, filter bson.M, attendance *models.Attendance, action string, now time.Time) (*models.Attendance, error) {
	var changed bool
	switch action {
	case models.ActionEntry:
		changed = applyEntry(attendance, now)
	case models.ActionExit:
		changed = applyExit(attendance, now)
	}
	if !changed {
		return attendance, nil
	}

	attendance.UpdatedAt = now
	update := bson.M{"$set": bson.M{
		"entryTime": attendance.EntryTime,
		"exitTime":  attendance.ExitTime,
		"status":    attendance.Status,
		"updatedAt": attendance.UpdatedAt,
	}}
	if _, err := DB.AttendanceCollection.UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}
	return attendance, nil
}

// SetStatus เปลี่ยนสถานะด้วยมือ ต้องมี record อยู่ก่อนแล้ว
func SetStatus(ctx context.Context, userID, eventID, status string) (*models.AttendanceRecord, error) {
	uID, err1 := primitive.ObjectIDFromHex(userID)
	eID, err2 := primitive.ObjectIDFromHex(eventID)
	if err1 != nil || err2 != nil {
		return nil, ErrInvalidID
	}

	filter := bson.M{"userId": uID, "eventId": eID}
	var attendance models.Attendance
	err := DB.AttendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}

	applyStatus(&attendance, status)
	attendance.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"entryTime": attendance.EntryTime,
		"exitTime":  attendance.ExitTime,
		"status":    attendance.Status,
		"updatedAt": attendance.UpdatedAt,
	}}
	if _, err := DB.AttendanceCollection.UpdateOne(ctx, filter, update); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, uID)
	if err != nil {
		return nil, err
	}
	result := attendance.AsRecord(user)
	return &result, nil
}

// ListByEvent ดึง record ทั้งหมดของ event พร้อม user ที่ resolve แล้ว
// เรียงตาม entryTime ใหม่สุดก่อน record ที่ยังไม่เข้า (null) อยู่ท้ายสุด
func ListByEvent(ctx context.Context, eventID string) ([]models.AttendanceRecord, error) {
	eID, err := primitive.ObjectIDFromHex(eventID)
	if err != nil {
		return nil, ErrInvalidID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"eventId": eID}}},
		{{Key: "$sort", Value: bson.D{{Key: "entryTime", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
	}

	cursor, err := DB.AttendanceCollection.Aggregate(ctx, pipeline, options.Aggregate())
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := []models.AttendanceRecord{}
	for cursor.Next(ctx) {
		var row struct {
			models.Attendance `bson:",inline"`
			User              models.UserDoc `bson:"user"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, err
		}
		user := models.UserRef{ID: row.UserID.Hex()}
		if !row.User.ID.IsZero() {
			user = models.UserRef{ID: row.User.ID.Hex(), Name: row.User.Name, Email: row.User.Email}
		}
		records = append(records, row.Attendance.AsRecord(user))
	}
	return records, cursor.Err()
}

func resolveUser(ctx context.Context, uID primitive.ObjectID) (models.UserRef, error) {
	var doc models.UserDoc
	err := DB.UserCollection.FindOne(ctx, bson.M{"_id": uID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		// user หายจาก collection แต่ record ยังอยู่ ส่งกลับแค่ id
		return models.UserRef{ID: uID.Hex()}, nil
	}
	if err != nil {
		return models.UserRef{}, err
	}
	return models.UserRef{ID: doc.ID.Hex(), Name: doc.Name, Email: doc.Email}, nil
}
