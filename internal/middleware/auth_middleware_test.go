package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/session"
)

func guardedApp(sessions *session.Manager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(httperr.StatusCode(err))
		},
	})
	app.Get("/login", func(c *fiber.Ctx) error {
		return sessions.Set(c, "alice")
	})
	app.Get("/mine", RequireUser(sessions), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user").(string))
	})
	app.Get("/register", RequireGuest(sessions), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/login", nil))
	require.NoError(t, err)
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestRequireUser(t *testing.T) {
	sessions := session.NewManager("test-secret")
	app := guardedApp(sessions)

	t.Run("anonymous is forbidden", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/mine", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("authenticated passes with identity in locals", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/mine", nil)
		req.AddCookie(login(t, app))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "alice", string(body))
	})
}

func TestRequireGuest(t *testing.T) {
	sessions := session.NewManager("test-secret")
	app := guardedApp(sessions)

	t.Run("anonymous passes", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/register", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("authenticated is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/register", nil)
		req.AddCookie(login(t, app))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}
