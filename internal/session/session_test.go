package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionApp(m *Manager) *fiber.App {
	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		return m.Set(c, "alice")
	})
	app.Get("/who", func(c *fiber.Ctx) error {
		return c.SendString(m.Current(c))
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		m.Clear(c)
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")
	return nil
}

func TestSessionRoundTrip(t *testing.T) {
	m := NewManager("test-secret")
	app := sessionApp(m)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/set", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)
	assert.NotEmpty(t, cookie.Value)

	req := httptest.NewRequest(fiber.MethodGet, "/who", nil)
	req.AddCookie(cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "alice", string(body))
}

func TestSessionAbsentByDefault(t *testing.T) {
	app := sessionApp(NewManager("test-secret"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/who", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, string(body))
}

func TestSessionRejectsForeignSignature(t *testing.T) {
	signer := sessionApp(NewManager("test-secret"))
	resp, err := signer.Test(httptest.NewRequest(fiber.MethodGet, "/set", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)

	verifier := sessionApp(NewManager("a-different-secret"))
	req := httptest.NewRequest(fiber.MethodGet, "/who", nil)
	req.AddCookie(cookie)
	resp, err = verifier.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, string(body), "a cookie signed with another secret counts as no session")
}

func TestSessionClear(t *testing.T) {
	app := sessionApp(NewManager("test-secret"))

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/clear", nil))
	require.NoError(t, err)
	cookie := sessionCookie(t, resp)
	assert.Empty(t, cookie.Value)
}

func TestFlashConsumedOnce(t *testing.T) {
	app := fiber.New()
	app.Get("/queue", func(c *fiber.Ctx) error {
		Flash(c, "Successfully Registered!")
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/read", func(c *fiber.Ctx) error {
		return c.SendString(ConsumeFlash(c))
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/queue", nil))
	require.NoError(t, err)

	var flash *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" {
			flash = cookie
		}
	}
	require.NotNil(t, flash)

	req := httptest.NewRequest(fiber.MethodGet, "/read", nil)
	req.AddCookie(flash)
	resp, err = app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Successfully Registered!", string(body))

	// Reading clears the cookie so the message shows exactly once.
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "flash" {
			assert.Empty(t, cookie.Value)
		}
	}
}
