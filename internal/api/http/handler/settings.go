package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/service/settings"
)

type SettingsHandler struct {
	svc settings.Service
}

func NewSettingsHandler(svc settings.Service) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// GET /settings/profile
func (h *SettingsHandler) Profile(c fiber.Ctx) error {
	return ok(c, h.svc.Profile(c.Context()))
}

// PUT /settings/profile
func (h *SettingsHandler) SaveProfile(c fiber.Ctx) error {
	var body domain.Profile
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.svc.SaveProfile(c.Context(), body); err != nil {
		if errors.Is(err, settings.ErrNameRequired) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return noContent(c)
}

// GET /settings/notifications
func (h *SettingsHandler) Notifications(c fiber.Ctx) error {
	return ok(c, h.svc.Notifications(c.Context()))
}

// PUT /settings/notifications
func (h *SettingsHandler) SaveNotifications(c fiber.Ctx) error {
	var body domain.NotificationPrefs
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.svc.SaveNotifications(c.Context(), body); err != nil {
		return internalError(c)
	}
	return noContent(c)
}

// POST /settings/reset
func (h *SettingsHandler) ResetAll(c fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "confirmation required")
	}
	if err := h.svc.ResetAll(c.Context()); err != nil {
		return internalError(c)
	}
	return noContent(c)
}
