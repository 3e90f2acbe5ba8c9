package routes

import (
	"Backend-Aavishkar/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// attendanceRoutes กำหนดเส้นทางสำหรับ Attendance API
func attendanceRoutes(router fiber.Router) {
	router.Post("/attendance", controllers.RecordAttendance)
	router.Get("/attendance", controllers.GetEventAttendance)
	router.Put("/attendance", controllers.UpdateAttendanceStatus)
}
