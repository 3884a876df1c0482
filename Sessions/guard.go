package Sessions

import "time"

// Session is the authenticated identity a request acts under. It is built
// from the bearer token's claims and, once handed to a guard, read-only.
type Session struct {
	UserID      uint
	DisplayName string
	Role        string
	Token       string
	ExpiresAt   time.Time
}

// Expired treats a session whose expiry has passed as already gone.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "deny-unauthenticated"
	case DenyForbidden:
		return "deny-forbidden"
	}
	return "unknown"
}

// Authorize decides whether a session may enter a view guarded by the given
// roles. A nil or expired session is unauthenticated. An empty role list
// means any authenticated role. Roles are compared raw, exactly as the
// session stores them, never as route segments.
func Authorize(s *Session, requiredRoles []string, now time.Time) Decision {
	if s == nil || s.Expired(now) {
		return DenyUnauthenticated
	}
	if len(requiredRoles) == 0 {
		return Allow
	}
	for _, role := range requiredRoles {
		if s.Role == role {
			return Allow
		}
	}
	return DenyForbidden
}
