package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"barberflow/config"
	"barberflow/cron"
	"barberflow/database"
	appointmentRepo "barberflow/database/repository/appointment"
	catalogRepo "barberflow/database/repository/catalog"
	conversationRepo "barberflow/database/repository/conversation"
	"barberflow/handlers"
	"barberflow/middleware"
	"barberflow/routes"
	"barberflow/services/agent"
	"barberflow/services/booking"
	"barberflow/services/tasks"
	"barberflow/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	loc, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	convRepo := conversationRepo.NewMongoConversationRepo()
	catRepo := catalogRepo.NewMongoCatalogRepo()

	if err := apptRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to ensure appointment indexes: %v", err)
	}

	// Reminder queue.
	redisOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	reminderLead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	reminderScheduler := tasks.NewScheduler(redisOpt, reminderLead)
	cron.InitReminderWorker(apptRepo)

	// Booking core.
	availability := &booking.DefaultAvailabilityEngine{
		ApptRepo: apptRepo,
		Catalog:  catRepo,
	}
	stagingSvc := &booking.DefaultStagingService{
		Catalog:      catRepo,
		ConvRepo:     convRepo,
		Availability: availability,
	}
	commitSvc := &booking.DefaultCommitService{
		ConvRepo:     convRepo,
		ApptRepo:     apptRepo,
		Catalog:      catRepo,
		Availability: availability,
		Reminders:    reminderScheduler,
	}
	cancelSvc := &booking.DefaultCancellationService{ApptRepo: apptRepo}
	statusSvc := &booking.DefaultStatusService{ApptRepo: apptRepo, Catalog: catRepo}
	catalogSvc := &booking.DefaultCatalogService{
		Repo:  catRepo,
		Cache: utils.GetCacheClient(),
		TTL:   time.Minute,
	}
	appointmentSvc := &booking.DefaultAppointmentService{
		ApptRepo:     apptRepo,
		Catalog:      catRepo,
		Availability: availability,
	}

	// The reasoning engine: built once at startup, injected everywhere.
	registry := agent.NewToolRegistry(agent.ToolDeps{
		Staging:      stagingSvc,
		Commit:       commitSvc,
		Cancel:       cancelSvc,
		Status:       statusSvc,
		Catalog:      catalogSvc,
		Availability: availability,
		Location:     loc,
	})
	bookingAgent, err := agent.NewAgent(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
		registry,
		convRepo,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize agent: %v", err)
	}

	agentHandler := handlers.NewAgentHandler(bookingAgent)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentSvc)
	catalogHandler := handlers.NewCatalogHandler(catalogSvc)

	handlerBundle := &handlers.HandlerBundle{
		ChatHandler: agentHandler.ChatHandler,

		ListAppointmentsHandler:  appointmentHandler.ListAppointmentsHandler,
		GetAppointmentHandler:    appointmentHandler.GetAppointmentHandler,
		UpdateStatusHandler:      appointmentHandler.UpdateStatusHandler,
		RescheduleHandler:        appointmentHandler.RescheduleHandler,
		DeleteAppointmentHandler: appointmentHandler.DeleteAppointmentHandler,

		ListServicesHandler: catalogHandler.ListServicesHandler,
		ListBarbersHandler:  catalogHandler.ListBarbersHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
