package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/healthify/healthify-api/docs"
	"github.com/healthify/healthify-api/internal/api/handler"
	"github.com/healthify/healthify-api/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	vitalsHandler      *handler.VitalsHandler
	alertHandler       *handler.AlertHandler
	appointmentHandler *handler.AppointmentHandler
	insightsHandler    *handler.InsightsHandler
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	vitalsHandler *handler.VitalsHandler,
	alertHandler *handler.AlertHandler,
	appointmentHandler *handler.AppointmentHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		vitalsHandler:      vitalsHandler,
		alertHandler:       alertHandler,
		appointmentHandler: appointmentHandler,
		insightsHandler:    insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Patients
		r.Route("/patients", func(r chi.Router) {
			r.Post("/", rt.patientHandler.Create)
			r.Get("/{patientId}", rt.patientHandler.GetByID)

			// Vitals and derived views (nested under patients)
			r.Route("/{patientId}/vitals", func(r chi.Router) {
				r.Post("/", rt.vitalsHandler.Record)
				r.Get("/", rt.vitalsHandler.History)
				r.Get("/latest", rt.vitalsHandler.Latest)
			})
			r.Get("/{patientId}/analytics", rt.vitalsHandler.Analytics)
			r.Get("/{patientId}/insights", rt.insightsHandler.Generate)
			r.Get("/{patientId}/alerts", rt.alertHandler.ListByPatient)
			r.Get("/{patientId}/appointments", rt.appointmentHandler.ListByPatient)
		})

		// Doctors
		r.Route("/doctors", func(r chi.Router) {
			r.Post("/", rt.doctorHandler.Create)
			r.Get("/{doctorId}", rt.doctorHandler.GetByID)
			r.Put("/{doctorId}/working-hours", rt.doctorHandler.SetWorkingHours)
			r.Post("/{doctorId}/patients", rt.doctorHandler.AssignPatient)
			r.Delete("/{doctorId}/patients/{patientId}", rt.doctorHandler.UnassignPatient)
			r.Get("/{doctorId}/alerts", rt.alertHandler.ListByDoctor)
			r.Get("/{doctorId}/appointments", rt.appointmentHandler.ListByDoctor)
			r.Get("/{doctorId}/slots", rt.appointmentHandler.Slots)
		})

		// Alerts
		r.Route("/alerts", func(r chi.Router) {
			r.Put("/{alertId}/read", rt.alertHandler.MarkRead)
			r.Put("/{alertId}/resolve", rt.alertHandler.Resolve)
		})

		// Appointments
		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", rt.appointmentHandler.Book)
			r.Put("/{appointmentId}/status", rt.appointmentHandler.UpdateStatus)
			r.Delete("/{appointmentId}", rt.appointmentHandler.Cancel)
		})
	})

	return r
}
