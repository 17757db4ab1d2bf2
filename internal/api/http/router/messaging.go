package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerMessagingRoutes(
	api fiber.Router,
	mh *handler.MessagingHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	msgs := api.Group("/messages", authRequired, adminOnly)

	msgs.Get("/:patientId", mh.List)
	msgs.Post("/:patientId", mh.Send)
	msgs.Post("/:patientId/close", mh.Close)
}
