package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	dh *handler.DietHandler,
	th *handler.TrackingHandler,
	authRequired fiber.Handler,
	adminOnly fiber.Handler,
) {
	patients := api.Group("/patients", authRequired, adminOnly)

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.GetByID)
	p.Put("/", ph.Update)
	p.Delete("/", ph.Delete)

	p.Post("/goals", ph.AddGoal)
	p.Patch("/goals/:goalId/progress", ph.UpdateGoalProgress)
	p.Patch("/goals/:goalId/status", ph.UpdateGoalStatus)
	p.Delete("/goals/:goalId", ph.DeleteGoal)

	p.Get("/anthropometry", ph.ListAnthropometry)
	p.Put("/anthropometry", ph.UpsertAnthropometry)
	p.Get("/anthropometry/export", ph.ExportAnthropometry)
	p.Delete("/anthropometry/:date", ph.DeleteAnthropometry)
	p.Delete("/anthropometry", ph.ClearAnthropometry)

	p.Put("/anamnesis", ph.UpdateAnamnesis)

	p.Get("/meal-plan", dh.GetMealPlan)
	p.Put("/meal-plan", dh.SaveMealPlan)
	p.Get("/meal-plan/totals", dh.Totals)
	p.Get("/shopping-list", dh.ShoppingList)
	p.Get("/next-meal", dh.NextMeal)

	p.Get("/tracking", th.Get)
	p.Patch("/tracking/water", th.AdjustWater)
	p.Put("/tracking/water-goal", th.SetWaterGoal)
	p.Post("/tracking/meals", th.AddMeal)
	p.Post("/tracking/activities", th.AddActivity)
}
