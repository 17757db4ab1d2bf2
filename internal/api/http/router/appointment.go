package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(
	api fiber.Router,
	ah *handler.AppointmentHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	appts := api.Group("/appointments", authRequired, adminOnly)

	appts.Get("/", ah.List)
	appts.Get("/today", ah.Today)
	appts.Post("/", ah.Book)
}
