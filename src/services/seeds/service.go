package seeds

import (
	"context"
	"fmt"
	"log"
	"time"

	"Backend-Aavishkar/src/database"
	"Backend-Aavishkar/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// seedEvent ข้อมูลตั้งต้นของ event หนึ่งงาน
type seedEvent struct {
	Name      string
	EventType string
	MinMember int
	MaxMember int
}

// รายการ event ของงานปีนี้ ตรงกับตารางรหัสผ่านใน services/passwords
var festEvents = []seedEvent{
	{Name: "aavishkar", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 4},
	{Name: "cineverse", EventType: models.EventTypeSolo},
	{Name: "stock x stake", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 3},
	{Name: "split or steal", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 2},
	{Name: "resume relay", EventType: models.EventTypeSolo},
	{Name: "meme fest", EventType: models.EventTypeSolo},
	{Name: "data loom", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 4},
	{Name: "man in middle", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 3},
	{Name: "human or ai", EventType: models.EventTypeSolo},
	{Name: "escape room", EventType: models.EventTypeGroup, MinMember: 3, MaxMember: 5},
	{Name: "tech debate", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 2},
	{Name: "no keyclick", EventType: models.EventTypeSolo},
	{Name: "tech ladder", EventType: models.EventTypeSolo},
	{Name: "cyber chase", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 4},
	{Name: "decode & dash", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 3},
	{Name: "code relay", EventType: models.EventTypeGroup, MinMember: 2, MaxMember: 4},
	{Name: "codewinglet", EventType: models.EventTypeSolo},
}

// SeedEvents ใส่ event ตั้งต้นถ้า collection ยังว่าง
// รันซ้ำได้ ไม่เขียนทับของเดิม
func SeedEvents(ctx context.Context) error {
	count, err := database.EventCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("ℹ️ Events already seeded, skipping")
		return nil
	}

	now := time.Now()
	endAt := now.Add(10 * time.Hour) // วันงานวันเดียว

	docs := make([]interface{}, 0, len(festEvents))
	for _, e := range festEvents {
		event := models.Event{
			ID:        primitive.NewObjectID(),
			Name:      e.Name,
			EventType: e.EventType,
			EndAt:     &endAt,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if e.EventType == models.EventTypeGroup {
			min, max := e.MinMember, e.MaxMember
			event.MinMember = &min
			event.MaxMember = &max
		}
		docs = append(docs, event)
	}

	if _, err := database.EventCollection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	log.Printf("✅ Seeded %d events", len(docs))
	return nil
}
