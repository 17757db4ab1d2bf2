package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/service/dashboard"
)

type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GET /dashboard/stats
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	return ok(c, h.svc.Stats(c.Context()))
}
