package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/qaforum/internal/config"
	"github.com/example/qaforum/internal/middleware"
	"github.com/example/qaforum/internal/routes"
	"github.com/example/qaforum/internal/store"
)

const testTimeout = 10 * time.Second

func newTestApp(t *testing.T) (*fiber.App, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	cfg := &config.Config{
		AppPort:         "0",
		SessionSecret:   "test-secret",
		SessionLifetime: 7 * 24 * time.Hour,
	}

	// Immutable keeps strings parsed from a request valid after the
	// request ends; the in-memory store retains them across requests.
	app := fiber.New(fiber.Config{Immutable: true})
	routes.Register(app, st, cfg)
	return app, st
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.Header.Set("Cookie", middleware.SessionCookie+"="+cookie)
	}

	resp, err := app.Test(req, int(testTimeout.Milliseconds()))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func get(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.Header.Set("Cookie", middleware.SessionCookie+"="+cookie)
	}

	resp, err := app.Test(req, int(testTimeout.Milliseconds()))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	return resp
}

func register(t *testing.T, app *fiber.App, phone, username, password string) *http.Response {
	t.Helper()

	return postForm(t, app, "/regist", url.Values{
		"phone":     {phone},
		"username":  {username},
		"password1": {password},
		"password2": {password},
	}, "")
}

// login authenticates and returns the session cookie value.
func login(t *testing.T, app *fiber.App, phone, password string) string {
	t.Helper()

	resp := postForm(t, app, "/login", url.Values{
		"phone":    {phone},
		"password": {password},
	}, "")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login status: got %d want %d", resp.StatusCode, http.StatusSeeOther)
	}

	cookie := sessionCookie(resp)
	if cookie == "" {
		t.Fatal("login did not set a session cookie")
	}
	return cookie
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookie {
			return c.Value
		}
	}
	return ""
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
}
