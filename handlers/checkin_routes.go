package handlers

import (
	"club-checkin-system/middleware"
	"club-checkin-system/models"
	"club-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupCheckInRoutes(app *fiber.App, checkInService *services.CheckInService, adminService *services.AdminService) {
	app.Post("/e-ticket-checkin", func(c *fiber.Ctx) error {
		var req struct {
			StudentID string                  `json:"studentID"`
			AdminRole models.AdminCredentials `json:"adminRole"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrMissingFields)
		}

		ticket, err := checkInService.ClubCheckIn(req.StudentID, req.AdminRole)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":       "Check-in success",
			"ticket":        ticket,
			"pointsAwarded": checkInService.Points.ClubCheckIn,
			"clubName":      req.AdminRole.ClubName,
		})
	})

	// Ledger listings are staff-facing.
	app.Get("/e-ticket-checkin", middleware.AdminContextMiddleware(), func(c *fiber.Ctx) error {
		if clubName := c.Query("clubName"); clubName != "" {
			checkIns, err := adminService.ListClubCheckInsByClub(clubName)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(fiber.Map{
				"clubCheckIns":  checkIns,
				"totalCheckIns": len(checkIns),
			})
		}

		if adminUsername := c.Query("adminUsername"); adminUsername != "" {
			checkIns, err := adminService.ListClubCheckInsByAdmin(adminUsername)
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(fiber.Map{
				"adminCheckIns":  checkIns,
				"totalProcessed": len(checkIns),
			})
		}

		report, err := adminService.Overview()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(report)
	})

	app.Post("/peer-checkin", func(c *fiber.Ctx) error {
		var req struct {
			ScannerID string `json:"scannerID"`
			PeerID    string `json:"peerID"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrMissingFields)
		}

		result, err := checkInService.PeerCheckIn(req.ScannerID, req.PeerID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{
			"message":       "Peer check-in success",
			"scannerID":     result.ScannerID,
			"peerID":        result.PeerID,
			"pointsAwarded": result.PointsAwarded,
		})
	})
}
