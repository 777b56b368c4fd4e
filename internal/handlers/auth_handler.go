package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/seareny/tastebook/internal/httperr"
	"github.com/seareny/tastebook/internal/services"
	"github.com/seareny/tastebook/internal/session"
)

type AuthHandler struct {
	users    *services.UserService
	sessions *session.Manager
}

func NewAuthHandler(users *services.UserService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", viewData(c, h.sessions, nil))
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	user, err := h.users.Register(c.UserContext(), c.FormValue("username"), c.FormValue("password"))
	if errors.Is(err, httperr.ErrConflict) {
		session.Flash(c, "Name already taken!")
		return c.Redirect("/register")
	}
	if err != nil {
		return err
	}

	if err := h.sessions.Set(c, user.Username); err != nil {
		return err
	}
	session.Flash(c, "Successfully Registered!")
	return c.Redirect("/")
}

func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", viewData(c, h.sessions, nil))
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	user, err := h.users.Login(c.UserContext(), c.FormValue("username"), c.FormValue("password"))
	if errors.Is(err, httperr.ErrInvalidCredentials) {
		// Same message whether the username or the password was wrong.
		session.Flash(c, "Incorrect password or username, try again!")
		return c.Redirect("/login")
	}
	if err != nil {
		return err
	}

	if err := h.sessions.Set(c, user.Username); err != nil {
		return err
	}
	return c.Redirect("/")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	session.Flash(c, "See you later!")
	return c.Redirect("/login")
}

func (h *AuthHandler) DeleteAccount(c *fiber.Ctx) error {
	user := c.Locals("user").(string)
	if err := h.users.Delete(c.UserContext(), user); err != nil {
		return err
	}
	h.sessions.Clear(c)
	session.Flash(c, "Sad to see you go, you can register with us again at any time!")
	return c.Redirect("/register")
}
