package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	usecase "github.com/BruksfildServices01/salon-scheduler/internal/usecase/scheduling"
)

const availabilityCacheTTL = 60 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	repo := infraRepo.NewSchedulingGormRepository(db)

	availCache := cache.New(cfg.RedisAddr, availabilityCacheTTL)
	workerLocks := usecase.NewWorkerLocks()

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	granularity := time.Duration(cfg.SlotGranularityMin) * time.Minute

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	availabilityUC := usecase.NewGetAvailability(repo, availCache, granularity)

	createAppointmentUC := usecase.NewCreateAppointment(
		repo,
		workerLocks,
		availCache,
		auditDispatcher,
	)

	confirmAppointmentUC := usecase.NewConfirmAppointment(repo, auditDispatcher)
	completeAppointmentUC := usecase.NewCompleteAppointment(repo, auditDispatcher)
	cancelAppointmentUC := usecase.NewCancelAppointment(repo, availCache, auditDispatcher)

	listAppointmentsUC := usecase.NewListAppointments(repo)
	myAppointmentsUC := usecase.NewGetMyAppointments(repo)

	getScheduleUC := usecase.NewGetSchedule(repo)
	updateScheduleUC := usecase.NewUpdateSchedule(repo, availCache, auditDispatcher)
	blockedDatesUC := usecase.NewBlockedDates(repo, availCache, auditDispatcher)

	statsUC := usecase.NewGetStats(repo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		cfg,
		repo,
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		myAppointmentsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		cfg,
		repo,
		listAppointmentsUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(getScheduleUC, updateScheduleUC)
	blockedDatesHandler := handlers.NewBlockedDatesHandler(cfg, blockedDatesUC)

	serviceHandler := handlers.NewServiceHandler(db, availCache)
	additionalHandler := handlers.NewAdditionalHandler(db, availCache)

	statsHandler := handlers.NewStatsHandler(cfg, statsUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/calendar", publicHandler.GetCalendar)
			publicAPI.GET("/workers/:workerId/services", publicHandler.ListServices)
			publicAPI.GET("/workers/:workerId/additionals", publicHandler.ListAdditionals)
			publicAPI.GET("/availability", publicHandler.GetAvailability)

			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/my-appointments", publicHandler.MyAppointments)
			publicAPI.POST("/appointments/:code/cancel", publicHandler.CancelAppointment)
		}

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
			secured.GET("/me", meHandler.Get)
			secured.PATCH("/me", meHandler.Update)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.PATCH("/me/services/:id/toggle", serviceHandler.Toggle)

			secured.GET("/me/additionals", additionalHandler.List)
			secured.POST("/me/additionals", additionalHandler.Create)
			secured.PATCH("/me/additionals/:id", additionalHandler.Update)
			secured.PATCH("/me/additionals/:id/toggle", additionalHandler.Toggle)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/blocked-dates", blockedDatesHandler.List)
			secured.POST("/me/blocked-dates", blockedDatesHandler.Create)
			secured.DELETE("/me/blocked-dates/:id", blockedDatesHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// STATS
			// ------------------------------
			secured.GET("/me/stats/today", statsHandler.Today)
			secured.GET("/me/stats/week", statsHandler.Week)
			secured.GET("/me/stats/month", statsHandler.Month)
			secured.GET("/me/stats/popular-services", statsHandler.PopularServices)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
