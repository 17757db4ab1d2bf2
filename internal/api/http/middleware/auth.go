package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/mairapenna/nutriplan_backend/internal/service/auth"
	"github.com/mairapenna/nutriplan_backend/pkg/reqctx"
)

const (
	LocalSession = "session"
)

// AuthRequired resolves the bearer token into a session and stores it in
// locals. Requests without a valid session get 401.
func AuthRequired(svc auth.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
		}

		sess, err := svc.Resolve(c.Context(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid session"})
		}

		info := &reqctx.SessionInfo{
			Token:     token,
			Role:      sess.Role,
			PatientID: sess.PatientID,
		}
		c.Locals(LocalSession, info)
		c.SetContext(reqctx.WithSession(c.Context(), info))
		return c.Next()
	}
}

// RequireAdmin rejects non-admin sessions. Must run after AuthRequired.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess, ok := SessionFromFiber(c)
		if !ok || sess.Role != auth.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}

// RequirePatient rejects sessions without a patient scope. Must run after
// AuthRequired.
func RequirePatient() fiber.Handler {
	return func(c fiber.Ctx) error {
		sess, ok := SessionFromFiber(c)
		if !ok || sess.Role != auth.RolePatient || sess.PatientID == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
		}
		return c.Next()
	}
}

// SessionFromFiber retrieves the resolved session from Fiber locals.
func SessionFromFiber(c fiber.Ctx) (*reqctx.SessionInfo, bool) {
	v := c.Locals(LocalSession)
	s, ok := v.(*reqctx.SessionInfo)
	return s, ok && s != nil
}

func bearerToken(c fiber.Ctx) string {
	h := c.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
