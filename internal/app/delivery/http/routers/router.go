package routers

import (
	"time"

	"kurabi-service/internal/app/config"
	"kurabi-service/internal/app/delivery/http/middlewares"
	"kurabi-service/internal/app/services/core/events"
	"kurabi-service/internal/app/services/core/reservations"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	eventController *events.EventController,
	reservationController *reservations.ReservationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			attachEventRoutes(r, middlewares, eventController)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", eventController.GetCalendar)
		})

		r.Route("/reservations", func(r chi.Router) {
			attachReservationRoutes(r, middlewares, reservationController)
		})
	})
}
