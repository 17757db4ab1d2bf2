package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/api/http/middleware"
	"github.com/mairapenna/nutriplan_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/login
func (h *AuthHandler) AdminLogin(c fiber.Ctx) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	token, err := h.svc.LoginAdmin(c.Context(), body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return unauthorized(c, "senha incorreta")
		}
		return internalError(c)
	}
	return ok(c, fiber.Map{"token": token, "role": auth.RoleAdmin})
}

// POST /auth/portal/login
func (h *AuthHandler) PortalLogin(c fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	token, patient, err := h.svc.LoginPatient(c.Context(), body.Email)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return unauthorized(c, "e-mail não encontrado")
		}
		return internalError(c)
	}
	return ok(c, fiber.Map{"token": token, "role": auth.RolePatient, "patient": patient})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	sess, found := middleware.SessionFromFiber(c)
	if !found {
		return unauthorized(c, "no session")
	}
	if err := h.svc.Logout(c.Context(), sess.Token); err != nil {
		return internalError(c)
	}
	return noContent(c)
}
