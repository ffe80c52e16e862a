package handlers

import (
	"club-checkin-system/middleware"
	"club-checkin-system/models"
	"club-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App, adminService *services.AdminService, serviceToken string) {
	app.Post("/admin", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrCredentialsRequired)
		}

		result, err := adminService.Authenticate(req.Username, req.Password)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(result)
	})

	// Roster import is organizer tooling, gated behind the service token.
	app.Post("/import-admins", middleware.ServiceAuthMiddleware(serviceToken), func(c *fiber.Ctx) error {
		var req []struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
			ClubName string `json:"clubName"`
			Name     string `json:"name"`
			FullName string `json:"fullName"`
		}
		if err := c.BodyParser(&req); err != nil {
			return respondError(c, services.ErrNoAdminsData)
		}

		admins := make([]models.AdminAccount, 0, len(req))
		for _, a := range req {
			admins = append(admins, models.AdminAccount{
				Username:    a.Username,
				Password:    a.Password,
				Role:        a.Role,
				ClubName:    a.ClubName,
				DisplayName: a.Name,
				FullName:    a.FullName,
			})
		}

		count, err := adminService.ImportAdmins(admins)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"message": "Import admin success", "count": count})
	})
}
