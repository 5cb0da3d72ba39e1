package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/VetCareCL/vetcare-api/internal/audit"
	"github.com/VetCareCL/vetcare-api/internal/config"
	"github.com/VetCareCL/vetcare-api/internal/handlers"
	infraRepo "github.com/VetCareCL/vetcare-api/internal/infra/repository"
	"github.com/VetCareCL/vetcare-api/internal/middleware"
	ucAppointment "github.com/VetCareCL/vetcare-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	setStatusUC := ucAppointment.NewSetStatus(
		appointmentRepo,
		auditDispatcher,
	)

	setPaymentStatusUC := ucAppointment.NewSetPaymentStatus(
		appointmentRepo,
		auditDispatcher,
	)

	listMyAppointmentsUC := ucAppointment.NewListMyAppointments(
		appointmentRepo,
	)

	getDetailUC := ucAppointment.NewGetAppointmentDetail(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	petHandler := handlers.NewPetHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	veterinarianHandler := handlers.NewVeterinarianHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		setStatusUC,
		setPaymentStatusUC,
		listMyAppointmentsUC,
		getDetailUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitMax, cfg.RateLimitWindow))
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/categories", serviceHandler.Categories)
		api.GET("/services/:id", serviceHandler.GetByID)

		api.GET("/veterinarians", veterinarianHandler.List)
		api.GET("/veterinarians/:id", veterinarianHandler.GetByID)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets/:id", petHandler.GetByID)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/my-appointments", appointmentHandler.ListMine)
			secured.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)
			secured.PATCH("/appointments/:id/payment", appointmentHandler.SetPaymentStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
