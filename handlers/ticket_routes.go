package handlers

import (
	"strconv"

	"club-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTicketRoutes(app *fiber.App, ticketService *services.TicketService, checkInService *services.CheckInService) {
	// POST /e-ticket serves two request forms, as the original client sends
	// both through one endpoint: a full registration (create/overwrite), and
	// a status-only update carrying just {id, checkInStatus}.
	app.Post("/e-ticket", func(c *fiber.Ctx) error {
		var req struct {
			services.RegisterRequest
			CheckInStatus *bool `json:"checkInStatus"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrMissingFields)
		}

		complete := req.ID != "" && req.Name != "" && req.Faculty != "" &&
			req.FoodType != "" && req.RegisteredAt != ""
		if !complete {
			if req.ID != "" && req.CheckInStatus != nil {
				ticket, err := ticketService.SetCheckInStatus(req.ID, *req.CheckInStatus)
				if err != nil {
					return respondError(c, err)
				}
				return c.JSON(fiber.Map{"message": "Check-in success", "ticket": ticket})
			}
			return respondError(c, services.ErrMissingFields)
		}

		reg := req.RegisterRequest
		if req.CheckInStatus != nil {
			reg.CheckInStatus = *req.CheckInStatus
		}
		ticket, err := ticketService.Register(&reg)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Create success", "ticket": ticket})
	})

	app.Get("/e-ticket", func(c *fiber.Ctx) error {
		tickets, err := ticketService.ListAll()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"tickets": tickets})
	})

	// Staff point correction. Runs through the engine so points keep a
	// single writer.
	app.Put("/e-ticket", func(c *fiber.Ctx) error {
		var req struct {
			ID    string `json:"id"`
			Point *int64 `json:"point"`
		}
		if err := c.BodyParser(&req); err != nil || req.ID == "" || req.Point == nil {
			return respondError(c, services.ErrMissingFields)
		}

		ticket, err := checkInService.AdjustPoints(req.ID, *req.Point)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Point updated", "ticket": ticket})
	})

	app.Get("/e-ticket/:studentID/qr", func(c *fiber.Ctx) error {
		size, _ := strconv.Atoi(c.Query("size", "256"))
		png, err := services.TicketQRCode(c.Params("studentID"), size)
		if err != nil {
			return respondError(c, err)
		}
		c.Set("Content-Type", "image/png")
		return c.Send(png)
	})

	// Scan flow lookup: the ticket if one exists, otherwise permission to
	// register.
	app.Post("/check-e-ticket", func(c *fiber.Ctx) error {
		var req struct {
			StudentID string `json:"studentID"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrStudentIDRequired)
		}

		result, err := ticketService.CheckTicket(req.StudentID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	})
}
