package handlers

import (
	"strconv"

	"club-checkin-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupLeaderboardRoutes(app *fiber.App, leaderboardService *services.LeaderboardService) {
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		entries, err := leaderboardService.Build()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"leaderboard": entries})
	})

	app.Get("/leaderboard/snapshots", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		snaps, err := leaderboardService.RecentSnapshots(limit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"snapshots": snaps})
	})
}
