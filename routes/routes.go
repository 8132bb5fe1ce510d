package routes

import (
	"powercare-backend/config"
	"powercare-backend/controllers"
	"powercare-backend/repository"
	"powercare-backend/services"
	"powercare-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Deps carries the composed gateways; main decides whether they are backed
// by Postgres or by fixtures.
type Deps struct {
	Identity     repository.IdentityRepository
	Catalog      repository.CatalogRepository
	Messages     repository.MessageRepository
	Reservations *services.ReservationService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(utils.ErrorHandler())

	authController := controllers.AuthController{Identity: d.Identity}
	catalogController := controllers.CatalogController{Catalog: d.Catalog}
	reservationController := controllers.ReservationController{Svc: d.Reservations}
	messageController := controllers.MessageController{Messages: d.Messages, Reservations: d.Reservations}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Catalog routes (read-only)
		servicesGroup := api.Group("/services")
		{
			servicesGroup.GET("", catalogController.GetServices)
			servicesGroup.GET("/:id", catalogController.GetService)
			servicesGroup.GET("/:id/agents", catalogController.GetServiceAgents)
		}
		api.GET("/agents/:id", catalogController.GetAgent)

		// Reservation routes
		reservations := api.Group("/reservations")
		{
			reservations.POST("", reservationController.CreateReservation)
			reservations.GET("", reservationController.GetReservations)
			reservations.GET("/:id", reservationController.GetReservation)
			reservations.POST("/:id/cancel", reservationController.CancelReservation)
			reservations.POST("/:id/remove", reservationController.RemoveReservation)

			// Conversation attached to a reservation
			reservations.GET("/:id/messages", messageController.GetMessages)
			reservations.POST("/:id/messages", messageController.SendMessage)
		}
	}

	return r
}
