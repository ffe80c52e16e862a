package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"club-checkin-system/handlers"
	"club-checkin-system/models"
	"club-checkin-system/services"
	"club-checkin-system/stores"
	"club-checkin-system/utils"
	"club-checkin-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment variables directly")
	}

	app := fiber.New()

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOriginsList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Admin-Username, X-Admin-Club",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !utils.R2Enabled() {
		if err := utils.EnsureExportDir(); err != nil {
			log.Fatal("failed to ensure export dir:", err)
		}
		log.Println("R2 not configured, snapshot reports go to ./exports")
	}

	// TranslateError turns driver unique-violations into gorm.ErrDuplicatedKey,
	// which the check-in engine relies on to make duplicate checks atomic.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Ticket{},
		&models.ClubCheckIn{},
		&models.AdminAccount{},
		&models.ClubCheckInRecord{},
		&models.PeerCheckInRecord{},
		&models.LeaderboardSnapshot{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	store := stores.New(db)
	checkInService := services.NewCheckInService(store)
	ticketService := services.NewTicketService(store)
	adminService := services.NewAdminService(store)
	leaderboardService := services.NewLeaderboardService(store)

	serviceToken := os.Getenv("CHECKIN_SERVICE_TOKEN")
	if serviceToken == "" {
		log.Fatal("CHECKIN_SERVICE_TOKEN environment variable not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Roster sync is optional: only runs when the registration system is
	// reachable from this deployment.
	if os.Getenv("ROSTER_SERVICE_URL") != "" {
		rosterClient := workers.NewRosterSyncClient(db)
		go workers.PollRoster(ctx, rosterClient, 30*time.Second)
		log.Println("Roster sync polling running (every 30s)")
	}

	leaderboardService.StartSnapshotScheduler()

	handlers.SetupTicketRoutes(app, ticketService, checkInService)
	handlers.SetupCheckInRoutes(app, checkInService, adminService)
	handlers.SetupAdminRoutes(app, adminService, serviceToken)
	handlers.SetupLeaderboardRoutes(app, leaderboardService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5300"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server running on http://localhost:%s", port)
	log.Printf("Club check-in award: %d points, peer check-in award: %d points",
		checkInService.Points.ClubCheckIn, checkInService.Points.PeerCheckIn)

	<-ctx.Done()
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
