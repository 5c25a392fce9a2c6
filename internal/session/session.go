package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/qaforum/internal/models"
	"github.com/example/qaforum/internal/store"
	"github.com/example/qaforum/internal/utils"
)

// Manager creates, resolves and destroys login sessions. Sessions are
// stored server-side keyed by an opaque token; the cookie value handed
// to the client is that token wrapped in a signed JWT.
type Manager struct {
	store    store.Store
	secret   string
	lifetime time.Duration

	now func() time.Time
}

// NewManager constructs a Manager with the given signing secret and
// session lifetime.
func NewManager(st store.Store, secret string, lifetime time.Duration) *Manager {
	return &Manager{
		store:    st,
		secret:   secret,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Lifetime returns the configured session lifetime.
func (m *Manager) Lifetime() time.Duration {
	return m.lifetime
}

// Create opens a session for the user and returns the signed cookie
// value. Persistent sessions slide: each resolve extends their expiry.
func (m *Manager) Create(userID uint, persistent bool) (string, error) {
	now := m.now()
	sess := &models.Session{
		Token:      uuid.NewString(),
		UserID:     userID,
		Persistent: persistent,
		CreatedAt:  now,
		ExpiresAt:  now.Add(m.lifetime),
	}

	if err := m.store.CreateSession(sess); err != nil {
		return "", err
	}

	return utils.SignSessionToken(m.secret, sess.Token)
}

// Resolve returns the user behind the cookie value, or nil when the
// cookie is invalid, the session is expired or gone, or the referenced
// user no longer exists. None of those cases is an error; only a
// storage failure is.
func (m *Manager) Resolve(cookie string) (*models.User, error) {
	if cookie == "" {
		return nil, nil
	}

	token, err := utils.ParseSessionToken(m.secret, cookie)
	if err != nil {
		return nil, nil
	}

	sess, err := m.store.FindSession(token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	now := m.now()
	if sess.ExpiresAt.Before(now) {
		_ = m.store.DeleteSession(token)
		return nil, nil
	}

	user, err := m.store.FindUserByID(sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if sess.Persistent {
		if err := m.store.TouchSession(token, now.Add(m.lifetime)); err != nil {
			return nil, err
		}
	}

	return user, nil
}

// Destroy invalidates the session behind the cookie value. Unparseable
// cookies are ignored; logout never fails the request.
func (m *Manager) Destroy(cookie string) {
	token, err := utils.ParseSessionToken(m.secret, cookie)
	if err != nil {
		return
	}
	_ = m.store.DeleteSession(token)
}
