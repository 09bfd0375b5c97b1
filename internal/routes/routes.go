package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/ProtocolNetwork/shop-portal/internal/audit"
	"github.com/ProtocolNetwork/shop-portal/internal/chat"
	"github.com/ProtocolNetwork/shop-portal/internal/config"
	"github.com/ProtocolNetwork/shop-portal/internal/handlers"
	infraRepo "github.com/ProtocolNetwork/shop-portal/internal/infra/repository"
	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
	"github.com/ProtocolNetwork/shop-portal/internal/roles"
	ucAppointment "github.com/ProtocolNetwork/shop-portal/internal/usecase/appointment"
	"github.com/ProtocolNetwork/shop-portal/internal/vin"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	chatClient := chat.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIKey, cfg.OpenAIModel)
	chatHistory := chat.NewHistoryStore(rdb)

	vinClient := vin.NewClient(cfg.VPICBaseURL)

	// ======================================================
	// USE CASES (APPOINTMENTS)
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
		cfg.ShopTimezone,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		appointmentRepo,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	vehicleHandler := handlers.NewVehicleHandler(vinClient)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		completeAppointmentUC,
		deleteAppointmentUC,
		listAppointmentsUC,
	)

	chatHandler := handlers.NewChatHandler(appointmentRepo, chatClient, chatHistory, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db, cfg)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// AUTHENTICATED (both roles)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.POST("/me/vehicle/vin-decode", vehicleHandler.DecodeVin)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.List)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CHAT ASSISTANT
			// ------------------------------
			secured.POST("/me/chat/messages", chatHandler.PostMessage)
			secured.GET("/me/chat/messages", chatHandler.ListMessages)

			// ------------------------------
			// MECHANIC ONLY
			// ------------------------------
			mechanic := secured.Group("/mechanic")
			mechanic.Use(middleware.RequireRole(roles.RoleMechanic))
			{
				mechanic.GET("/customers", customerHandler.List)
				mechanic.GET("/customers/:id", customerHandler.Get)
				mechanic.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
