package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"seoscope/internal/config"
	"seoscope/internal/models"
)

// AuthMiddleware handles user authentication via sessions. When OIDC is not
// configured the dashboard runs in open single-user mode and both guards
// pass everything through.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Enabled reports whether login is required at all.
func (m *AuthMiddleware) Enabled() bool {
	return m.cfg.OIDCIssuer != ""
}

// RequireAuth ensures the user is authenticated, redirecting to /login if not.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if !m.Enabled() {
		return c.Next()
	}

	user := userFromSession(c)
	if user == nil {
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if user := userFromSession(c); user != nil {
		c.Locals("user", user)
	}
	return c.Next()
}

// userFromSession rebuilds the session user, or nil when not logged in.
func userFromSession(c fiber.Ctx) *models.User {
	sess := session.FromContext(c)
	if sess == nil {
		return nil
	}

	sub, _ := sess.Get("user_sub").(string)
	if sub == "" {
		return nil
	}

	email, _ := sess.Get("user_email").(string)
	name, _ := sess.Get("user_name").(string)
	picture, _ := sess.Get("user_picture").(string)

	return &models.User{Sub: sub, Email: email, Name: name, Picture: picture}
}
