package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/service/messaging"
)

type MessagingHandler struct {
	svc messaging.Service
}

func NewMessagingHandler(svc messaging.Service) *MessagingHandler {
	return &MessagingHandler{svc: svc}
}

func mapMessagingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, messaging.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, messaging.ErrEmptyMessage):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /messages/:patientId
func (h *MessagingHandler) List(c fiber.Ctx) error {
	msgs, err := h.svc.List(c.Context(), c.Params("patientId"))
	if err != nil {
		return mapMessagingError(c, err)
	}
	return ok(c, msgs)
}

// POST /messages/:patientId
func (h *MessagingHandler) Send(c fiber.Ctx) error {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	msg, err := h.svc.Send(c.Context(), c.Params("patientId"), messaging.SenderNutri, body.Text)
	if err != nil {
		return mapMessagingError(c, err)
	}
	return created(c, msg)
}

// POST /messages/:patientId/close
func (h *MessagingHandler) Close(c fiber.Ctx) error {
	h.svc.CloseConversation(c.Params("patientId"))
	return noContent(c)
}
