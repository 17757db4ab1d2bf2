package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerDashboardRoutes(
	api fiber.Router,
	dh *handler.DashboardHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	api.Get("/dashboard/stats", authRequired, adminOnly, dh.Stats)
}
