package routers

import (
	"mycare-service/internal/app/delivery/http/middlewares"
	"mycare-service/internal/app/services/consultations"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *consultations.ConsultationController) {
	router.Post("/consultations", consultationController.InitiateConsultation)
	router.Get("/patients/{patient_id}/consultations", consultationController.GetPatientConsultations)
	router.Get("/doctors/{doctor_id}/consultations", consultationController.GetDoctorConsultations)
	router.Post("/consultations/{consultation_id}/assign", consultationController.AssignDoctor)
	router.Post("/consultations/{consultation_id}/complete", consultationController.CompleteConsultation)
	router.Post("/consultations/{consultation_id}/cancel", consultationController.CancelConsultation)
	router.With(middlewares.RequireSuperadminAPIKey).Post("/mock-data", consultationController.InitializeMockData)
}
