package routers

import (
	"kurabi-service/internal/app/delivery/http/middlewares"
	"kurabi-service/internal/app/services/core/reservations"

	"github.com/go-chi/chi/v5"
)

func attachReservationRoutes(router chi.Router, middlewares *middlewares.Middlewares, reservationController *reservations.ReservationController) {
	router.Get("/", reservationController.ServiceInfo)
	router.Get("/whatsapp", reservationController.CreateWhatsApp)
	router.Post("/whatsapp", reservationController.CreateWhatsApp)
	// sendBeacon posts; the fetch fallback gets.
	router.Get("/log", reservationController.Log)
	router.Post("/log", reservationController.Log)
}
