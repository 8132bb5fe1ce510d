package main

import (
	"fmt"
	"os"

	"powercare-backend/config"
	"powercare-backend/models"
	"powercare-backend/repository"
	"powercare-backend/routes"
	"powercare-backend/services"
	"powercare-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	utils.InitializeLogger()
	logger := utils.GetLogger()

	var notifier services.Notifier = services.LogNotifier{}
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		notifier = services.NewTwilioNotifier()
	}

	var deps routes.Deps
	if config.MockMode() {
		// No DB_URL configured: serve the local fixture dataset, same rule
		// the mobile client applies to its API base URL.
		logger.Warn("DB_URL not set, running on in-memory fixture data")
		mem := repository.NewMemoryRepository(repository.DefaultFixtures())
		deps = routes.Deps{
			Identity:     mem,
			Catalog:      mem,
			Messages:     mem,
			Reservations: services.NewReservationService(mem, mem, notifier, logger),
		}
	} else {
		config.ConnectDB()
		config.DB.AutoMigrate(
			&models.User{},
			&models.Client{},
			&models.Agent{},
			&models.Service{},
			&models.Tache{},
			&models.Pricing{},
			&models.Reservation{},
			&models.Message{},
			&models.NotificationLog{},
		)

		repo := repository.NewGormRepository(config.DB)
		deps = routes.Deps{
			Identity:     repo,
			Catalog:      repo,
			Messages:     repo,
			Reservations: services.NewReservationService(repo, repo, notifier, logger),
		}

		reminders := services.NewReminderService(config.DB, notifier)
		reminders.StartScheduler()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(deps)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
