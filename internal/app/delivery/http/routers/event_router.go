package routers

import (
	"kurabi-service/internal/app/delivery/http/middlewares"
	"kurabi-service/internal/app/services/core/events"
	"kurabi-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEventRoutes(router chi.Router, middlewares *middlewares.Middlewares, eventController *events.EventController) {
	router.Get("/", eventController.FindAll)
	router.With(middlewares.AdminAuthenticate).Post("/", eventController.CreateEvent)
	router.With(middlewares.AdminAuthenticate).Put("/{"+constvars.URLParamEventID+"}", eventController.UpdateEvent)
	router.With(middlewares.AdminAuthenticate).Delete("/{"+constvars.URLParamEventID+"}", eventController.DeleteEvent)
}
