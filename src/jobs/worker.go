package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"Backend-Aavishkar/src/database"
	"Backend-Aavishkar/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleCloseEventTask ปิดการเช็คชื่อของ event
// คนที่ลงทะเบียนแต่ไม่มี record จะถูกบันทึกเป็น ABSENT
// record ที่มีอยู่แล้วไม่ถูกแตะ override ของ organizer ชนะเสมอ
func HandleCloseEventTask(ctx context.Context, t *asynq.Task) error {
	var payload EventPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	eventID, err := primitive.ObjectIDFromHex(payload.EventID)
	if err != nil {
		return err
	}

	// ตรวจสอบว่า event ยังมีอยู่ไหม
	var event models.Event
	err = database.EventCollection.FindOne(ctx, bson.M{"_id": eventID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		log.Println("⚠️ Event not found. Possibly deleted. Skipping task:", payload.EventID)
		return nil
	}
	if err != nil {
		return err
	}

	userIDs, err := registeredUserIDs(ctx, event)
	if err != nil {
		return err
	}

	now := time.Now()
	marked := 0
	for _, userID := range userIDs {
		filter := bson.M{"userId": userID, "eventId": eventID}
		update := bson.M{"$setOnInsert": bson.M{
			"userId":    userID,
			"eventId":   eventID,
			"entryTime": nil,
			"exitTime":  nil,
			"status":    models.StatusAbsent,
			"createdAt": now,
			"updatedAt": now,
		}}
		result, err := database.AttendanceCollection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue // แข่งกับ entry ที่เพิ่งเกิด ถือว่ามี record แล้ว
			}
			return err
		}
		if result.UpsertedCount > 0 {
			marked++
		}
	}

	log.Printf("✅ Event closed: %s (%d marked absent)", payload.EventID, marked)
	return nil
}

func registeredUserIDs(ctx context.Context, event models.Event) ([]primitive.ObjectID, error) {
	var ids []primitive.ObjectID

	if event.EventType == models.EventTypeGroup {
		cursor, err := database.GroupCollection.Find(ctx, bson.M{"eventId": event.ID})
		if err != nil {
			return nil, err
		}
		defer cursor.Close(ctx)
		for cursor.Next(ctx) {
			var reg models.GroupRegistration
			if err := cursor.Decode(&reg); err != nil {
				return nil, err
			}
			ids = append(ids, reg.LeaderID)
			ids = append(ids, reg.MemberIDs...)
		}
		return ids, cursor.Err()
	}

	cursor, err := database.RegistrationCollection.Find(ctx, bson.M{"eventId": event.ID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	for cursor.Next(ctx) {
		var reg models.Registration
		if err := cursor.Decode(&reg); err != nil {
			return nil, err
		}
		ids = append(ids, reg.UserID)
	}
	return ids, cursor.Err()
}

// ScheduleUpcomingEventCloses ตั้งงานปิด event ทุกงานที่ยังไม่จบ เรียกตอน start
func ScheduleUpcomingEventCloses(ctx context.Context) error {
	cursor, err := database.EventCollection.Find(ctx, bson.M{"endAt": bson.M{"$gt": time.Now()}})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return err
		}
		if event.EndAt == nil {
			continue
		}
		if err := ScheduleEventClose(event.ID.Hex(), *event.EndAt); err != nil {
			log.Println("⚠️ Failed to schedule close for", event.Name, ":", err)
		}
	}
	return cursor.Err()
}

// RunWorker เริ่ม asynq worker บล็อกจนกว่าจะจบ
func RunWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Worker will not start.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeCloseEvent, HandleCloseEventTask)

	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Asynq worker error:", err)
	}
}
