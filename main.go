// File: caregrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"caregrid/config"
	"caregrid/cron"
	"caregrid/database"
	appointmentRepo "caregrid/database/repository/appointment"
	patientRepo "caregrid/database/repository/patient"
	scheduleRepo "caregrid/database/repository/schedule"
	"caregrid/handlers"
	"caregrid/middleware"
	"caregrid/routes"
	"caregrid/services/patient"
	"caregrid/services/scheduling"
	"caregrid/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	patients := patientRepo.NewMongoPatientRepo()

	// background reminder worker.
	cron.InitReminderWorker(appointments)

	// services.
	schedulingService := &scheduling.DefaultSchedulingService{
		Schedules:    schedules,
		Appointments: appointments,
		Patients:     patients,
		Reminders:    cron.NewReminderScheduler(),
	}
	patientService := &patient.DefaultPatientService{
		Repo:     patients,
		HashSalt: config.AppConfig.PatientIDHashSalt,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Schedule:    handlers.NewScheduleHandler(schedulingService),
		Appointment: handlers.NewAppointmentHandler(schedulingService),
		Patient:     handlers.NewPatientHandler(patientService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3003"
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
