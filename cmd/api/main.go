// Healthify API
//
// REST API for patient health telemetry, alerts and scheduling.
//
//	@title			Healthify API
//	@version		1.0
//	@description	Day-bucketed vital ingestion with threshold alerts, rolling-window analytics, AI insights and appointment scheduling.
//
//	@BasePath	/v1
//
//	@tag.name			patients
//	@tag.description	Patient management endpoints
//
//	@tag.name			doctors
//	@tag.description	Doctor and assignment endpoints
//
//	@tag.name			vitals
//	@tag.description	Vital ingestion and analytics endpoints
//
//	@tag.name			alerts
//	@tag.description	Clinical alert endpoints
//
//	@tag.name			appointments
//	@tag.description	Scheduling endpoints
//
//	@tag.name			insights
//	@tag.description	AI insights endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/healthify/healthify-api/internal/api"
	"github.com/healthify/healthify-api/internal/api/handler"
	"github.com/healthify/healthify-api/internal/config"
	"github.com/healthify/healthify-api/internal/domain"
	"github.com/healthify/healthify-api/internal/llm"
	"github.com/healthify/healthify-api/internal/notify"
	"github.com/healthify/healthify-api/internal/repository"
	"github.com/healthify/healthify-api/internal/seed"
	"github.com/healthify/healthify-api/internal/service"
	"github.com/healthify/healthify-api/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when OTLP_ENDPOINT is unset)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "healthify-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Tracer shutdown failed: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.Patient{}, &domain.Doctor{},
		&domain.DailyBucket{}, &domain.MetricSample{},
		&domain.Alert{}, &domain.Appointment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	bucketRepo := repository.NewBucketRepository(db)
	alertRepo := repository.NewAlertRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	// Initialize outbound mail (may be nil if SMTP is not configured)
	var notifier notify.Notifier
	if mailer := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.EmailFrom); mailer != nil {
		notifier = mailer
	} else {
		log.Println("Warning: SMTP host not configured, outbound notifications are disabled")
	}

	// Initialize services
	patientService := service.NewPatientService(patientRepo)
	doctorService := service.NewDoctorService(doctorRepo, patientRepo)
	vitalsService := service.NewVitalsService(bucketRepo, patientRepo, doctorRepo, alertRepo, notifier)
	analyticsService := service.NewAnalyticsService(bucketRepo, patientRepo)
	alertService := service.NewAlertService(alertRepo, doctorRepo, patientRepo)
	scheduleService := service.NewScheduleService(appointmentRepo, doctorRepo, patientRepo, notifier)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(analyticsService, openaiClient, patientRepo)

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(patientService)
	doctorHandler := handler.NewDoctorHandler(doctorService)
	vitalsHandler := handler.NewVitalsHandler(vitalsService, analyticsService)
	alertHandler := handler.NewAlertHandler(alertService)
	appointmentHandler := handler.NewAppointmentHandler(scheduleService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(patientHandler, doctorHandler, vitalsHandler, alertHandler, appointmentHandler, insightsHandler)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
