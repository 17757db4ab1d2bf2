package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerSettingsRoutes(
	api fiber.Router,
	sh *handler.SettingsHandler,
	dh *handler.DietHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	s := api.Group("/settings", authRequired, adminOnly)

	s.Get("/profile", sh.Profile)
	s.Put("/profile", sh.SaveProfile)
	s.Get("/notifications", sh.Notifications)
	s.Put("/notifications", sh.SaveNotifications)
	s.Post("/reset", sh.ResetAll)

	// Food search backs the meal-plan editor, admin surface only.
	api.Get("/foods/search", authRequired, adminOnly, dh.SearchFood)
}
