package controllers

import (
	"log"

	"Backend-Aavishkar/src/models"
	"Backend-Aavishkar/src/services/events"
	"Backend-Aavishkar/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetAllEvents godoc
// @Summary      Get all events
// @Tags         events
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/events [get]
func GetAllEvents(c *fiber.Ctx) error {
	list, err := events.GetAllEvents(c.Context())
	if err != nil {
		log.Println("Error fetching events:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch events")
	}
	return c.JSON(fiber.Map{"events": list})
}

// GetEventParticipants godoc
// @Summary      Get the registered roster of an event
// @Description  SOLO events answer a flat participant list, GROUP events a list of groups with leader and members
// @Tags         events
// @Produce      json
// @Param        id path string true "Event ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  models.ErrorResponse
// @Failure      500  {object}  models.ErrorResponse
// @Router       /api/event/{id}/participants [get]
func GetEventParticipants(c *fiber.Ctx) error {
	roster, err := events.GetParticipants(c.Context(), c.Params("id"))
	if err == events.ErrEventNotFound {
		return utils.HandleError(c, fiber.StatusNotFound, "Event not found")
	}
	if err != nil {
		log.Println("Error fetching participants:", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Failed to fetch participants")
	}

	// client แยก SOLO/GROUP จากรูปร่างของ element แรก (มี groupId หรือไม่)
	if roster.EventType == models.EventTypeGroup {
		return c.JSON(fiber.Map{"participants": roster.Groups})
	}
	return c.JSON(fiber.Map{"participants": roster.Solo})
}
