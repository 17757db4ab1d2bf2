package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/service/tracking"
)

type TrackingHandler struct {
	svc tracking.Service
}

func NewTrackingHandler(svc tracking.Service) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

func mapTrackingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, tracking.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, tracking.ErrInvalidGoal):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:id/tracking
func (h *TrackingHandler) Get(c fiber.Ctx) error {
	t, err := h.svc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapTrackingError(c, err)
	}
	return ok(c, t)
}

// PATCH /patients/:id/tracking/water
func (h *TrackingHandler) AdjustWater(c fiber.Ctx) error {
	var body struct {
		Delta int `json:"delta"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	t, err := h.svc.AdjustWater(c.Context(), c.Params("id"), body.Delta)
	if err != nil {
		return mapTrackingError(c, err)
	}
	return ok(c, t)
}

// PUT /patients/:id/tracking/water-goal
func (h *TrackingHandler) SetWaterGoal(c fiber.Ctx) error {
	var body struct {
		Goal int `json:"goal"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	t, err := h.svc.SetWaterGoal(c.Context(), c.Params("id"), body.Goal)
	if err != nil {
		return mapTrackingError(c, err)
	}
	return ok(c, t)
}

// POST /patients/:id/tracking/meals
func (h *TrackingHandler) AddMeal(c fiber.Ctx) error {
	var body struct {
		Type      string `json:"type"`
		Content   string `json:"content"`
		PhotoURL  string `json:"photoUrl"`
		Adherence string `json:"adherence"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	meal, err := h.svc.AddMeal(c.Context(), c.Params("id"), tracking.AddMealRequest{
		Type:      body.Type,
		Content:   body.Content,
		PhotoURL:  body.PhotoURL,
		Adherence: body.Adherence,
	})
	if err != nil {
		return mapTrackingError(c, err)
	}
	return created(c, meal)
}

// POST /patients/:id/tracking/activities
func (h *TrackingHandler) AddActivity(c fiber.Ctx) error {
	var body struct {
		Name      string `json:"name"`
		Duration  int    `json:"duration"`
		Intensity string `json:"intensity"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	act, err := h.svc.AddActivity(c.Context(), c.Params("id"), tracking.AddActivityRequest{
		Name:      body.Name,
		Duration:  body.Duration,
		Intensity: body.Intensity,
	})
	if err != nil {
		return mapTrackingError(c, err)
	}
	return created(c, act)
}
