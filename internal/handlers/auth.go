package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/middleware"
	"github.com/example/qaforum/internal/models"
	"github.com/example/qaforum/internal/session"
	"github.com/example/qaforum/internal/store"
	"github.com/example/qaforum/internal/utils"
)

// AuthHandler bundles dependencies for registration, login and logout.
type AuthHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(st store.Store, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{store: st, sessions: sessions}
}

type registerRequest struct {
	Phone     string `json:"phone" form:"phone"`
	Username  string `json:"username" form:"username"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

// RegisterForm describes the registration form for clients rendering
// their own markup.
func (h *AuthHandler) RegisterForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"fields":  []string{"phone", "username", "password1", "password2"},
	})
}

// Register creates a new user account and sends the client to the
// login page. Registration does not log the user in.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Phone == "" || req.Username == "" || req.Password1 == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}

	if len(req.Phone) > 11 || len(req.Username) > 50 {
		return fiber.NewError(fiber.StatusBadRequest, "phone or username is too long")
	}

	if req.Password1 != req.Password2 {
		return fiber.NewError(fiber.StatusBadRequest, "passwords do not match")
	}

	// Advisory pre-check for a friendly message; the unique index on
	// phone is what actually guards against a concurrent duplicate.
	if _, err := h.store.FindUserByPhone(req.Phone); err == nil {
		return fiber.NewError(fiber.StatusConflict, "phone already registered")
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(req.Password1)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Phone:        req.Phone,
		Username:     req.Username,
		PasswordHash: passwordHash,
	}

	if err := h.store.CreateUser(&user); err != nil {
		if errors.Is(err, store.ErrDuplicatePhone) {
			return fiber.NewError(fiber.StatusConflict, "phone already registered")
		}
		return err
	}

	return c.Redirect("/login", fiber.StatusSeeOther)
}

type loginRequest struct {
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

// LoginForm describes the login form.
func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"fields":  []string{"phone", "password"},
	})
}

// Login authenticates by phone and password. Unknown phone and wrong
// password produce the same message so callers cannot probe for
// registered numbers.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.store.FindUserByPhone(req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid phone or password")
		}
		return err
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid phone or password")
	}

	cookie, err := h.sessions.Create(user.ID, true)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    cookie,
		Expires:  time.Now().Add(h.sessions.Lifetime()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.Redirect("/", fiber.StatusSeeOther)
}

// Logout clears the session unconditionally and returns to login.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if cookie := c.Cookies(middleware.SessionCookie); cookie != "" {
		h.sessions.Destroy(cookie)
	}
	c.ClearCookie(middleware.SessionCookie)

	return c.Redirect("/login", fiber.StatusFound)
}
