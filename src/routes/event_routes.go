package routes

import (
	"Backend-Aavishkar/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// eventRoutes กำหนดเส้นทางสำหรับ Event API
func eventRoutes(router fiber.Router) {
	router.Get("/events", controllers.GetAllEvents)
	router.Get("/event/:id/participants", controllers.GetEventParticipants)
}
