package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	EventCollection        *mongo.Collection
	UserCollection         *mongo.Collection
	RegistrationCollection *mongo.Collection
	GroupCollection        *mongo.Collection
	AttendanceCollection   *mongo.Collection
)

const dbName = "AavishkarDB"

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB() error {

	// โหลดค่า Environment Variables จากไฟล์ .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() { // ✅ Run only once
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		EventCollection = GetCollection(dbName, "events")
		UserCollection = GetCollection(dbName, "users")
		RegistrationCollection = GetCollection(dbName, "registrations")
		GroupCollection = GetCollection(dbName, "groupRegistrations")
		AttendanceCollection = GetCollection(dbName, "attendances")

		log.Println("✅ MongoDB connected successfully")

		if connectErr = EnsureIndexes(); connectErr != nil {
			log.Fatal("❌ Failed to create indexes:", connectErr)
		}
	})

	return connectErr
}

// EnsureIndexes สร้าง index ที่จำเป็น
// unique compound index บน (userId, eventId) กันไม่ให้มี attendance ซ้ำต่อคนต่อ event
func EnsureIndexes() error {
	_, err := AttendanceCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "eventId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = UserCollection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// GetCollection รับ Collection จาก MongoDB
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
