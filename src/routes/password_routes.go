package routes

import (
	"Backend-Aavishkar/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// passwordRoutes เส้นทางตรวจรหัสผ่านประจำ event
func passwordRoutes(router fiber.Router) {
	router.Post("/verify-password", controllers.VerifyEventPassword)
}
