package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerPortalRoutes(
	api fiber.Router,
	ph *handler.PortalHandler,
	authRequired fiber.Handler,
	patientOnly fiber.Handler,
) {
	portal := api.Group("/portal", authRequired, patientOnly)

	portal.Get("/home", ph.Home)
	portal.Get("/diet", ph.Diet)
	portal.Get("/evolution", ph.Evolution)
	portal.Get("/chat", ph.Chat)
	portal.Post("/chat", ph.SendChat)
	portal.Get("/settings", ph.Settings)
}
