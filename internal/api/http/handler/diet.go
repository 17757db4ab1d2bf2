package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/service/diet"
)

type DietHandler struct {
	svc diet.Service
}

func NewDietHandler(svc diet.Service) *DietHandler {
	return &DietHandler{svc: svc}
}

func mapDietError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, diet.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, diet.ErrNoMealPlan):
		return notFound(c, err.Error())
	case errors.Is(err, diet.ErrInvalidDays):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients/:id/meal-plan
func (h *DietHandler) GetMealPlan(c fiber.Ctx) error {
	plan, err := h.svc.GetMealPlan(c.Context(), c.Params("id"))
	if err != nil {
		return mapDietError(c, err)
	}
	return ok(c, plan)
}

// PUT /patients/:id/meal-plan
func (h *DietHandler) SaveMealPlan(c fiber.Ctx) error {
	var body domain.MealPlan
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.svc.SaveMealPlan(c.Context(), c.Params("id"), body); err != nil {
		return mapDietError(c, err)
	}
	return noContent(c)
}

// GET /patients/:id/meal-plan/totals
func (h *DietHandler) Totals(c fiber.Ctx) error {
	totals, err := h.svc.Totals(c.Context(), c.Params("id"))
	if err != nil {
		return mapDietError(c, err)
	}
	return ok(c, totals)
}

// GET /patients/:id/shopping-list?days=7
func (h *DietHandler) ShoppingList(c fiber.Ctx) error {
	var q struct {
		Days int `query:"days"`
	}
	_ = c.Bind().Query(&q)
	if q.Days == 0 {
		q.Days = 7
	}

	list, err := h.svc.BuildShoppingList(c.Context(), c.Params("id"), q.Days)
	if err != nil {
		return mapDietError(c, err)
	}
	return ok(c, list)
}

// GET /patients/:id/next-meal
func (h *DietHandler) NextMeal(c fiber.Ctx) error {
	meal, err := h.svc.NextMeal(c.Context(), c.Params("id"), time.Now())
	if err != nil {
		return mapDietError(c, err)
	}
	return ok(c, meal)
}

// GET /foods/search?q=aveia
func (h *DietHandler) SearchFood(c fiber.Ctx) error {
	var q struct {
		Q string `query:"q"`
	}
	_ = c.Bind().Query(&q)
	if q.Q == "" {
		return badRequest(c, "q is required")
	}

	products, err := h.svc.SearchFood(c.Context(), q.Q)
	if err != nil {
		// The upstream API being down is not a client error; degrade to
		// an empty result.
		slog.Warn("food search failed", "err", err)
		return ok(c, []diet.FoodProduct{})
	}
	return ok(c, products)
}
