package events

import (
	"context"
	"errors"
	"strings"

	DB "Backend-Aavishkar/src/database"
	"Backend-Aavishkar/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrEventNotFound ไม่พบ event ตาม id
var ErrEventNotFound = errors.New("event not found")

// Roster รายชื่อผู้เข้าร่วมของ event หนึ่งงาน
// SOLO ใช้ Solo, GROUP ใช้ Groups อย่างใดอย่างหนึ่งเท่านั้น
type Roster struct {
	EventType string
	Solo      []models.User
	Groups    []models.Group
}

// GetAllEvents ดึง event ทั้งหมด
func GetAllEvents(ctx context.Context) ([]models.Event, error) {
	cursor, err := DB.EventCollection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, cursor.Err()
}

// GetEventByID ดึง event ตาม id
func GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrEventNotFound
	}

	var event models.Event
	err = DB.EventCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetParticipants ดึงรายชื่อผู้ลงทะเบียนของ event
// ตัดแถวอีเมลซ้ำออกตั้งแต่ฝั่ง server แถวแรกที่เจอชนะ
func GetParticipants(ctx context.Context, eventID string) (*Roster, error) {
	event, err := GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.EventType == models.EventTypeGroup {
		groups, err := groupParticipants(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		return &Roster{EventType: models.EventTypeGroup, Groups: groups}, nil
	}

	solo, err := soloParticipants(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	return &Roster{EventType: models.EventTypeSolo, Solo: solo}, nil
}

func soloParticipants(ctx context.Context, eventID primitive.ObjectID) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: 1}})
	cursor, err := DB.RegistrationCollection.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var userIDs []primitive.ObjectID
	for cursor.Next(ctx) {
		var reg models.Registration
		if err := cursor.Decode(&reg); err != nil {
			return nil, err
		}
		userIDs = append(userIDs, reg.UserID)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	users, err := fetchUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	participants := []models.User{}
	for _, id := range userIDs {
		user, ok := users[id]
		if !ok {
			continue
		}
		key := strings.ToLower(user.Email)
		if seen[key] {
			continue
		}
		seen[key] = true
		participants = append(participants, user)
	}
	return participants, nil
}

func groupParticipants(ctx context.Context, eventID primitive.ObjectID) ([]models.Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "registrationDate", Value: 1}})
	cursor, err := DB.GroupCollection.Find(ctx, bson.M{"eventId": eventID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regs []models.GroupRegistration
	var userIDs []primitive.ObjectID
	for cursor.Next(ctx) {
		var reg models.GroupRegistration
		if err := cursor.Decode(&reg); err != nil {
			return nil, err
		}
		regs = append(regs, reg)
		userIDs = append(userIDs, reg.LeaderID)
		userIDs = append(userIDs, reg.MemberIDs...)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	users, err := fetchUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	groups := []models.Group{}
	for _, reg := range regs {
		leader, ok := users[reg.LeaderID]
		if !ok {
			continue
		}

		group := models.Group{
			GroupID: reg.ID.Hex(),
			Leader:  leader,
			Members: []models.User{},
		}

		leaderKey := strings.ToLower(leader.Email)
		seen := map[string]bool{leaderKey: true} // หัวหน้าไม่ถูกนับซ้ำใน members
		for _, memberID := range reg.MemberIDs {
			member, ok := users[memberID]
			if !ok {
				continue
			}
			key := strings.ToLower(member.Email)
			if seen[key] {
				continue
			}
			seen[key] = true
			group.Members = append(group.Members, member)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func fetchUsers(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	users := map[primitive.ObjectID]models.User{}
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := DB.UserCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc models.UserDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users[doc.ID] = doc.AsUser()
	}
	return users, cursor.Err()
}
