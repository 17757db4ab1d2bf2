package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/service/appointment"
)

type AppointmentHandler struct {
	svc appointment.Service
}

func NewAppointmentHandler(svc appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{svc: svc}
}

func mapAppointmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, appointment.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, appointment.ErrInvalidDate),
		errors.Is(err, appointment.ErrInvalidTime):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /appointments
func (h *AppointmentHandler) List(c fiber.Ctx) error {
	var q struct {
		Date  string `query:"date"`
		Year  int    `query:"year"`
		Month int    `query:"month"`
	}
	_ = c.Bind().Query(&q)

	switch {
	case q.Date != "":
		return ok(c, h.svc.ForDay(c.Context(), q.Date))
	case q.Year != 0 && q.Month >= 1 && q.Month <= 12:
		return ok(c, h.svc.ForMonth(c.Context(), q.Year, time.Month(q.Month)))
	default:
		return ok(c, h.svc.List(c.Context()))
	}
}

// GET /appointments/today
func (h *AppointmentHandler) Today(c fiber.Ctx) error {
	return ok(c, h.svc.Today(c.Context()))
}

// POST /appointments
func (h *AppointmentHandler) Book(c fiber.Ctx) error {
	var body struct {
		PatientID string `json:"patientId"`
		Date      string `json:"date"`
		Time      string `json:"time"`
		Type      string `json:"type"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	appt, err := h.svc.Add(c.Context(), appointment.AddRequest{
		PatientID: body.PatientID,
		Date:      body.Date,
		Time:      body.Time,
		Type:      body.Type,
	})
	if err != nil {
		return mapAppointmentError(c, err)
	}
	return created(c, appt)
}
