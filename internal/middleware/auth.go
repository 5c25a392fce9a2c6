package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/models"
	"github.com/example/qaforum/internal/session"
)

const userContextKey = "currentUser"

// SessionCookie is the name of the login session cookie.
const SessionCookie = "qaforum_session"

// LoadUser resolves the session cookie on every request and stores the
// authenticated user in the request context. It never rejects the
// request; unauthenticated requests simply carry no user.
func LoadUser(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cookie := c.Cookies(SessionCookie)
		if cookie != "" {
			user, err := sessions.Resolve(cookie)
			if err != nil {
				return err
			}
			if user != nil {
				c.Locals(userContextKey, user)
			}
		}
		return c.Next()
	}
}

// RequireAuth redirects to the login page when no user is logged in.
// Authenticated-or-not is the only authorization distinction the forum
// makes.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := CurrentUser(c); !ok {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// CurrentUser extracts the authenticated user from the request context.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	value := c.Locals(userContextKey)
	if value == nil {
		return nil, false
	}

	if user, ok := value.(*models.User); ok {
		return user, true
	}

	return nil, false
}
