package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seareny/tastebook/internal/auth"
	"github.com/seareny/tastebook/internal/session"
)

// RequireUser admits only requests with an established session identity and
// stores it in Locals("user") for the handlers downstream.
func RequireUser(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := sessions.Current(c)
		if d := auth.RequireUser(user); !d.Allowed {
			return d.Err()
		}
		c.Locals("user", user)
		return c.Next()
	}
}

// RequireGuest admits only requests without a session identity; register
// and login sit behind it.
func RequireGuest(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d := auth.RequireGuest(sessions.Current(c)); !d.Allowed {
			return d.Err()
		}
		return c.Next()
	}
}
