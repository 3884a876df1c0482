package Sessions

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func liveSession(role string) *Session {
	return &Session{
		UserID:      7,
		DisplayName: "Asha",
		Role:        role,
		Token:       "tok-" + role,
		ExpiresAt:   now.Add(time.Hour),
	}
}

func TestAuthorize(t *testing.T) {
	expired := liveSession("Parent")
	expired.ExpiresAt = now.Add(-time.Minute)

	boundary := liveSession("Parent")
	boundary.ExpiresAt = now

	cases := []struct {
		name     string
		session  *Session
		required []string
		want     Decision
	}{
		{"absent session", nil, []string{"Doctor"}, DenyUnauthenticated},
		{"absent session, open route", nil, nil, DenyUnauthenticated},
		{"expired session", expired, nil, DenyUnauthenticated},
		{"expiry boundary counts as expired", boundary, nil, DenyUnauthenticated},
		{"wrong role", liveSession("Parent"), []string{"Doctor"}, DenyForbidden},
		{"matching role", liveSession("Doctor"), []string{"Doctor"}, Allow},
		{"one of several roles", liveSession("Sub Admin"), []string{"Super Admin", "Sub Admin"}, Allow},
		{"empty set means any authenticated", liveSession("Parent"), []string{}, Allow},
	}

	for _, c := range cases {
		if got := Authorize(c.session, c.required, now); got != c.want {
			t.Errorf("%s: Authorize() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAuthorizeComparesRawRoles(t *testing.T) {
	// Route segments like "super-admin" must never match the raw role.
	s := liveSession("Super Admin")
	if got := Authorize(s, []string{"super-admin"}, now); got != DenyForbidden {
		t.Fatalf("segment-form role matched: got %v, want %v", got, DenyForbidden)
	}
	if got := Authorize(s, []string{"Super Admin"}, now); got != Allow {
		t.Fatalf("raw role rejected: got %v, want %v", got, Allow)
	}
}

func TestRegistryResolvePurgesExpiredOnce(t *testing.T) {
	r := NewRegistry()
	s := *liveSession("Parent")
	s.ExpiresAt = now.Add(-time.Second)
	r.Put(s)

	if _, ok := r.Resolve(s.Token, now); ok {
		t.Fatal("expired session resolved as live")
	}
	// First resolve purged it; the entry must already be gone.
	if r.Clear(s.Token) {
		t.Fatal("expired session still stored after resolve")
	}
	// Second check behaves like an absent session, no error, same decision.
	if got := r.Check(s.Token, nil, now); got != DenyUnauthenticated {
		t.Fatalf("second check = %v, want %v", got, DenyUnauthenticated)
	}
}

func TestRegistryCheck(t *testing.T) {
	r := NewRegistry()
	s := *liveSession("Parent")
	r.Put(s)

	if got := r.Check(s.Token, []string{"Doctor"}, now); got != DenyForbidden {
		t.Fatalf("wrong role: got %v, want %v", got, DenyForbidden)
	}
	if got := r.Check(s.Token, nil, now); got != Allow {
		t.Fatalf("open route: got %v, want %v", got, Allow)
	}
	if got := r.Check("unknown-token", nil, now); got != DenyUnauthenticated {
		t.Fatalf("unknown token: got %v, want %v", got, DenyUnauthenticated)
	}

	if !r.Clear(s.Token) {
		t.Fatal("logout did not find the session")
	}
	if got := r.Check(s.Token, nil, now); got != DenyUnauthenticated {
		t.Fatalf("after logout: got %v, want %v", got, DenyUnauthenticated)
	}
}
