package session

import (
	"testing"
	"time"

	"github.com/example/qaforum/internal/models"
	"github.com/example/qaforum/internal/store"
)

func newTestManager(st store.Store) *Manager {
	return NewManager(st, "test-secret", 7*24*time.Hour)
}

func seedUser(t *testing.T, st *store.MemoryStore) *models.User {
	t.Helper()
	user := &models.User{Phone: "13800000000", Username: "alice", PasswordHash: "hash"}
	if err := st.CreateUser(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestCreateAndResolve(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)
	user := seedUser(t, st)

	cookie, err := mgr.Create(user.ID, true)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	resolved, err := mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved == nil || resolved.ID != user.ID {
		t.Fatalf("resolved wrong user: %+v", resolved)
	}
}

func TestResolve_EmptyAndGarbageCookies(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)

	for _, cookie := range []string{"", "garbage", "a.b.c"} {
		user, err := mgr.Resolve(cookie)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", cookie, err)
		}
		if user != nil {
			t.Fatalf("Resolve(%q) returned a user", cookie)
		}
	}
}

func TestResolve_ExpiredSessionIsDeleted(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)
	user := seedUser(t, st)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return now }

	cookie, err := mgr.Create(user.ID, true)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	now = now.Add(8 * 24 * time.Hour)

	resolved, err := mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved != nil {
		t.Fatal("expired session still resolved a user")
	}

	// The row is gone, so even rolling the clock back resolves nothing.
	now = now.Add(-8 * 24 * time.Hour)
	resolved, err = mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved != nil {
		t.Fatal("deleted session resolved a user")
	}
}

func TestResolve_PersistentSessionSlides(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)
	user := seedUser(t, st)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return now }

	cookie, err := mgr.Create(user.ID, true)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Six days later the session is still inside its window; resolving
	// it pushes the expiry forward another full lifetime.
	now = now.Add(6 * 24 * time.Hour)
	if resolved, err := mgr.Resolve(cookie); err != nil || resolved == nil {
		t.Fatalf("Resolve at day 6: user=%v err=%v", resolved, err)
	}

	// Day 12 would be past the original expiry but inside the slid one.
	now = now.Add(6 * 24 * time.Hour)
	resolved, err := mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve at day 12 error: %v", err)
	}
	if resolved == nil {
		t.Fatal("sliding expiry did not extend the session")
	}
}

func TestResolve_MissingUserYieldsNoUser(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)
	user := seedUser(t, st)

	cookie, err := mgr.Create(user.ID, true)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	st.DeleteUser(user.ID)

	resolved, err := mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved != nil {
		t.Fatal("resolved a user that no longer exists")
	}
}

func TestDestroy_InvalidatesSession(t *testing.T) {
	t.Parallel()

	st := store.NewMemoryStore()
	mgr := newTestManager(st)
	user := seedUser(t, st)

	cookie, err := mgr.Create(user.ID, true)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	mgr.Destroy(cookie)

	resolved, err := mgr.Resolve(cookie)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if resolved != nil {
		t.Fatal("destroyed session still resolved a user")
	}
}
