package controllers

import (
	"Backend-Aavishkar/src/services/passwords"
	"Backend-Aavishkar/src/utils"

	"github.com/gofiber/fiber/v2"
)

// VerifyEventPassword godoc
// @Summary      Verify the shared password of an event
// @Description  Shared secret per event, not per-user auth
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object true "eventName, password"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /api/verify-password [post]
func VerifyEventPassword(c *fiber.Ctx) error {
	var body struct {
		EventName string `json:"eventName"`
		Password  string `json:"password"`
	}

	if err := c.BodyParser(&body); err != nil || body.EventName == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Event name and password are required",
		})
	}

	if !passwords.Verify(body.EventName, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false, "message": "Invalid password",
		})
	}

	// best-effort ถ้าไม่มี Redis ก็ข้าม
	_ = utils.MarkEventVerified(body.EventName)

	return c.JSON(fiber.Map{"success": true})
}
