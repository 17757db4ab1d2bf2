package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, ah *handler.AuthHandler, authRequired fiber.Handler) {
	a := api.Group("/auth")

	a.Post("/login", ah.AdminLogin)
	a.Post("/portal/login", ah.PortalLogin)
	a.Post("/logout", authRequired, ah.Logout)
}
