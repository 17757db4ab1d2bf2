package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/service/export"
	"github.com/mairapenna/nutriplan_backend/internal/service/patient"
)

type PatientHandler struct {
	svc    patient.Service
	export export.Service
}

func NewPatientHandler(svc patient.Service, exportSvc export.Service) *PatientHandler {
	return &PatientHandler{svc: svc, export: exportSvc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound),
		errors.Is(err, patient.ErrGoalNotFound),
		errors.Is(err, patient.ErrRecordNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrNameRequired),
		errors.Is(err, patient.ErrEmailRequired),
		errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidDate):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	var q struct {
		Search    string `query:"search"`
		Condition string `query:"condition"`
		Status    string `query:"status"`
	}
	_ = c.Bind().Query(&q)

	return ok(c, h.svc.List(c.Context(), patient.ListRequest{
		Search:    q.Search,
		Condition: q.Condition,
		Status:    q.Status,
	}))
}

// POST /patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	var body struct {
		Name         string            `json:"name"`
		Age          int               `json:"age"`
		Email        string            `json:"email"`
		Phone        string            `json:"phone"`
		Condition    string            `json:"condition"`
		Stage        string            `json:"stage"`
		Anamnesis    *domain.Anamnesis `json:"anamnesis"`
		MealPlan     *domain.MealPlan  `json:"mealPlan"`
		PrimaryGoal  string            `json:"primaryGoal"`
		GoalDeadline string            `json:"goalDeadline"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	p, err := h.svc.Create(c.Context(), patient.CreateRequest{
		Name:         body.Name,
		Age:          body.Age,
		Email:        body.Email,
		Phone:        body.Phone,
		Condition:    body.Condition,
		Stage:        body.Stage,
		Anamnesis:    body.Anamnesis,
		MealPlan:     body.MealPlan,
		PrimaryGoal:  body.PrimaryGoal,
		GoalDeadline: body.GoalDeadline,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /patients/:id
func (h *PatientHandler) GetByID(c fiber.Ctx) error {
	p, err := h.svc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PUT /patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	var body domain.Patient
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = c.Params("id")

	p, err := h.svc.Update(c.Context(), body)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "confirmation required")
	}
	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// POST /patients/:id/goals
func (h *PatientHandler) AddGoal(c fiber.Ctx) error {
	var body struct {
		Description string `json:"description"`
		Deadline    string `json:"deadline"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	g, err := h.svc.AddGoal(c.Context(), c.Params("id"), patient.AddGoalRequest{
		Description: body.Description,
		Deadline:    body.Deadline,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, g)
}

// PATCH /patients/:id/goals/:goalId/progress
func (h *PatientHandler) UpdateGoalProgress(c fiber.Ctx) error {
	var body struct {
		Progress int `json:"progress"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	g, err := h.svc.UpdateGoalProgress(c.Context(), c.Params("id"), c.Params("goalId"), body.Progress)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, g)
}

// PATCH /patients/:id/goals/:goalId/status
func (h *PatientHandler) UpdateGoalStatus(c fiber.Ctx) error {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	g, err := h.svc.UpdateGoalStatus(c.Context(), c.Params("id"), c.Params("goalId"), body.Status)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, g)
}

// DELETE /patients/:id/goals/:goalId
func (h *PatientHandler) DeleteGoal(c fiber.Ctx) error {
	if err := h.svc.DeleteGoal(c.Context(), c.Params("id"), c.Params("goalId")); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// GET /patients/:id/anthropometry
func (h *PatientHandler) ListAnthropometry(c fiber.Ctx) error {
	recs, err := h.svc.ListAnthropometry(c.Context(), c.Params("id"))
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, recs)
}

// PUT /patients/:id/anthropometry
func (h *PatientHandler) UpsertAnthropometry(c fiber.Ctx) error {
	var body struct {
		OriginalDate string  `json:"originalDate"`
		Date         string  `json:"date"`
		Weight       float64 `json:"weight"`
		Height       float64 `json:"height"`
		Waist        float64 `json:"waist"`
		Hip          float64 `json:"hip"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	rec, err := h.svc.UpsertAnthropometry(c.Context(), c.Params("id"), patient.UpsertAnthropometryRequest{
		OriginalDate: body.OriginalDate,
		Date:         body.Date,
		Weight:       body.Weight,
		Height:       body.Height,
		Waist:        body.Waist,
		Hip:          body.Hip,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, rec)
}

// DELETE /patients/:id/anthropometry/:date
func (h *PatientHandler) DeleteAnthropometry(c fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "confirmation required")
	}
	if err := h.svc.DeleteAnthropometry(c.Context(), c.Params("id"), c.Params("date")); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// DELETE /patients/:id/anthropometry
func (h *PatientHandler) ClearAnthropometry(c fiber.Ctx) error {
	if !requireConfirm(c) {
		return badRequest(c, "confirmation required")
	}
	if err := h.svc.ClearAnthropometry(c.Context(), c.Params("id")); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// GET /patients/:id/anthropometry/export
func (h *PatientHandler) ExportAnthropometry(c fiber.Ctx) error {
	b, name, err := h.export.AnthropometryXLSX(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, export.ErrPatientNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c)
	}
	c.Set("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(b)
}

// PUT /patients/:id/anamnesis
func (h *PatientHandler) UpdateAnamnesis(c fiber.Ctx) error {
	var body domain.Anamnesis
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := h.svc.UpdateAnamnesis(c.Context(), c.Params("id"), body); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}
