package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/middleware"
	"github.com/mairapenna/nutriplan_backend/internal/domain"
	"github.com/mairapenna/nutriplan_backend/internal/service/appointment"
	"github.com/mairapenna/nutriplan_backend/internal/service/diet"
	"github.com/mairapenna/nutriplan_backend/internal/service/messaging"
	"github.com/mairapenna/nutriplan_backend/internal/service/patient"
	"github.com/mairapenna/nutriplan_backend/internal/service/tracking"
)

// PortalHandler serves the patient-facing routes. Every method reads the
// patient id from the resolved session, never from the URL, so one patient
// can never address another's data. The portal is read-only except chat.
type PortalHandler struct {
	patients patient.Service
	appts    appointment.Service
	diet     diet.Service
	tracking tracking.Service
	messages messaging.Service
}

func NewPortalHandler(
	patients patient.Service,
	appts appointment.Service,
	dietSvc diet.Service,
	trackingSvc tracking.Service,
	messages messaging.Service,
) *PortalHandler {
	return &PortalHandler{
		patients: patients,
		appts:    appts,
		diet:     dietSvc,
		tracking: trackingSvc,
		messages: messages,
	}
}

func (h *PortalHandler) sessionPatient(c fiber.Ctx) (domain.Patient, error) {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return domain.Patient{}, patient.ErrPatientNotFound
	}
	return h.patients.GetByID(c.Context(), sess.PatientID)
}

// GET /portal/home
func (h *PortalHandler) Home(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}

	var nextMeal *domain.Meal
	if meal, err := h.diet.NextMeal(c.Context(), p.ID, time.Now()); err == nil {
		nextMeal = &meal
	}

	track, err := h.tracking.Get(c.Context(), p.ID)
	if err != nil {
		return mapTrackingError(c, err)
	}

	var nextAppt *domain.Appointment
	for _, a := range h.appts.Upcoming(c.Context(), 0) {
		if a.PatientID == p.ID {
			appt := a
			nextAppt = &appt
			break
		}
	}

	return ok(c, fiber.Map{
		"patient":         p,
		"nextMeal":        nextMeal,
		"tracking":        track,
		"nextAppointment": nextAppt,
		"goals":           p.Goals,
	})
}

// GET /portal/diet
func (h *PortalHandler) Diet(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}

	plan, err := h.diet.GetMealPlan(c.Context(), p.ID)
	if err != nil {
		if errors.Is(err, diet.ErrNoMealPlan) {
			return ok(c, fiber.Map{"mealPlan": nil})
		}
		return mapDietError(c, err)
	}
	totals, err := h.diet.Totals(c.Context(), p.ID)
	if err != nil {
		return mapDietError(c, err)
	}
	return ok(c, fiber.Map{"mealPlan": plan, "totals": totals})
}

// GET /portal/evolution
func (h *PortalHandler) Evolution(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}

	recs, err := h.patients.ListAnthropometry(c.Context(), p.ID)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{
		"anthropometry": recs,
		"goals":         p.Goals,
		"symptomsLog":   p.SymptomsLog,
	})
}

// GET /portal/chat
func (h *PortalHandler) Chat(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}

	msgs, err := h.messages.List(c.Context(), p.ID)
	if err != nil {
		return mapMessagingError(c, err)
	}
	return ok(c, msgs)
}

// POST /portal/chat
func (h *PortalHandler) SendChat(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	msg, err := h.messages.Send(c.Context(), p.ID, p.ID, body.Text)
	if err != nil {
		return mapMessagingError(c, err)
	}
	return created(c, msg)
}

// GET /portal/settings
func (h *PortalHandler) Settings(c fiber.Ctx) error {
	p, err := h.sessionPatient(c)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{
		"name":  p.Name,
		"email": p.Email,
		"phone": p.Phone,
	})
}
