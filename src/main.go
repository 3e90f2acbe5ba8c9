package main

import (
	"Backend-Aavishkar/src/database"
	"Backend-Aavishkar/src/jobs"
	"Backend-Aavishkar/src/routes"
	"Backend-Aavishkar/src/services/seeds"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {

	// เชื่อมต่อกับ MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis + Asynq ใช้กับงานปิด event ไม่มีก็รันได้
	database.InitRedis()
	database.InitAsynq()

	if os.Getenv("SEED_DB") == "true" {
		if err := seeds.SeedEvents(context.Background()); err != nil {
			log.Fatalf("Error seeding events: %v", err)
		}
	}

	if err := jobs.ScheduleUpcomingEventCloses(context.Background()); err != nil {
		log.Println("⚠️ Failed to schedule event closes:", err)
	}
	go jobs.RunWorker()

	// สร้าง app instance
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ ต้องเป็น false ถ้าใช้ "*"
	}))

	// รวม routes จากแต่ละ module
	routes.InitRoutes(app)

	// get url from .env
	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888" // ใช้ 8888 เป็นค่าเริ่มต้น
	}

	// เริ่มเซิร์ฟเวอร์
	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
