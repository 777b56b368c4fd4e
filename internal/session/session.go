// Package session keeps the per-client identity in a signed cookie, the
// same shape as the signed-cookie sessions the site always used: a single
// "user" claim, established on login or registration and cleared on logout.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const cookieName = "session"

// Manager signs and verifies session cookies with the configured secret.
type Manager struct {
	secret []byte
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Set establishes username as the session identity.
func (m *Manager) Set(c *fiber.Ctx, username string) error {
	claims := jwt.MapClaims{
		"user": username,
		"iat":  time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}

// Current returns the session identity, or "" when no valid session cookie
// is present. A cookie that fails signature verification counts as absent.
func (m *Manager) Current(c *fiber.Ctx) string {
	raw := c.Cookies(cookieName)
	if raw == "" {
		return ""
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	user, _ := claims["user"].(string)
	return user
}

// Clear drops the session identity.
func (m *Manager) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
