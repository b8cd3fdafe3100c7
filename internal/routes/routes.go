package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/HenriqueMND/agendamento-app/internal/audit"
	"github.com/HenriqueMND/agendamento-app/internal/cache"
	"github.com/HenriqueMND/agendamento-app/internal/config"
	"github.com/HenriqueMND/agendamento-app/internal/handlers"
	infraRepo "github.com/HenriqueMND/agendamento-app/internal/infra/repository"
	"github.com/HenriqueMND/agendamento-app/internal/middleware"
	"github.com/HenriqueMND/agendamento-app/internal/storage"
	ucSchedule "github.com/HenriqueMND/agendamento-app/internal/usecase/schedule"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	rdb := cache.NewRedis(cfg)
	resetCodes := cache.NewResetCodes(rdb)

	avatars := storage.NewAvatarStore(cfg)

	// ======================================================
	// USE CASES — SCHEDULE
	// ======================================================
	dayViewUC := ucSchedule.NewDayView(scheduleRepo)
	weekViewUC := ucSchedule.NewWeekView(scheduleRepo)
	historyViewUC := ucSchedule.NewHistoryView(scheduleRepo)

	confirmUC := ucSchedule.NewConfirmAppointment(scheduleRepo, auditDispatcher)
	cancelUC := ucSchedule.NewCancelAppointment(scheduleRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, resetCodes)
	meHandler := handlers.NewMeHandler(db, avatars)
	contactHandler := handlers.NewContactHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		auditDispatcher,
		dayViewUC,
		weekViewUC,
		confirmUC,
		cancelUC,
	)

	historyHandler := handlers.NewHistoryHandler(db, historyViewUC)
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
		api.POST("/auth/forgot-password", authHandler.ForgotPassword)
		api.POST("/auth/reset-password", authHandler.ResetPassword)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.PATCH("/me/password", meHandler.ChangePassword)
			secured.POST("/me/photo", meHandler.UploadAvatar)

			// ------------------------------
			// CONTACTS
			// ------------------------------
			secured.GET("/me/contacts", contactHandler.List)
			secured.POST("/me/contacts", contactHandler.Create)
			secured.PATCH("/me/contacts/:id", contactHandler.Update)
			secured.DELETE("/me/contacts/:id", contactHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/week", appointmentHandler.ListWeek)
			secured.GET("/me/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.POST("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Cancel)

			// ------------------------------
			// HISTORY
			// ------------------------------
			secured.GET("/me/history", historyHandler.List)
			secured.GET("/me/history/confirmed", historyHandler.ListConfirmed)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
