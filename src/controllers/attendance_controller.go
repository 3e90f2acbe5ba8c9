package controllers

import (
	"log"

	"Backend-Aavishkar/src/models"
	"Backend-Aavishkar/src/services/attendances"

	"github.com/gofiber/fiber/v2"
)

// RecordAttendance godoc
// @Summary      Record an entry or exit action
// @Description  Create or update the attendance record for (userId, eventId)
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body body object true "userId, eventId, action (entry|exit)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/attendance [post]
func RecordAttendance(c *fiber.Ctx) error {
	var body struct {
		UserID  string `json:"userId"`
		EventID string `json:"eventId"`
		Action  string `json:"action"`
	}

	if err := c.BodyParser(&body); err != nil || body.UserID == "" || body.EventID == "" || body.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Missing required fields",
		})
	}

	record, err := attendances.RecordAction(c.Context(), body.UserID, body.EventID, body.Action)
	if err == attendances.ErrInvalidID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	}
	if err != nil {
		log.Println("Error recording attendance:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to record attendance",
		})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": record})
}

// GetEventAttendance godoc
// @Summary      List attendance records of an event
// @Description  All records with userId resolved, entryTime descending, nulls last
// @Tags         attendance
// @Produce      json
// @Param        eventId query string true "Event ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/attendance [get]
func GetEventAttendance(c *fiber.Ctx) error {
	eventID := c.Query("eventId")
	if eventID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Event ID is required",
		})
	}

	records, err := attendances.ListByEvent(c.Context(), eventID)
	if err == attendances.ErrInvalidID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	}
	if err != nil {
		log.Println("Error fetching attendance:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to fetch attendance",
		})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": records})
}

// UpdateAttendanceStatus godoc
// @Summary      Override the status of an attendance record
// @Description  Requires an existing record. ABSENT clears entry and exit times.
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        body body object true "userId, eventId, status (PRESENT|ABSENT|PARTIAL)"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/attendance [put]
func UpdateAttendanceStatus(c *fiber.Ctx) error {
	var body struct {
		UserID  string `json:"userId"`
		EventID string `json:"eventId"`
		Status  string `json:"status"`
	}

	if err := c.BodyParser(&body); err != nil || body.UserID == "" || body.EventID == "" || body.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Missing required fields",
		})
	}
	if !models.ValidStatus(body.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": "Invalid status",
		})
	}

	record, err := attendances.SetStatus(c.Context(), body.UserID, body.EventID, body.Status)
	if err == attendances.ErrInvalidID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false, "message": err.Error(),
		})
	}
	if err == attendances.ErrRecordNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false, "message": "Attendance record not found",
		})
	}
	if err != nil {
		log.Println("Error updating attendance:", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false, "message": "Failed to update attendance",
		})
	}

	return c.JSON(fiber.Map{"success": true, "attendance": record})
}
