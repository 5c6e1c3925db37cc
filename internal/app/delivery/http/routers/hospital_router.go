package routers

import (
	"mycare-service/internal/app/services/hospitals"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, hospitalController *hospitals.HospitalController) {
	router.Post("/hospital-recommendations", hospitalController.GetRecommendations)
}
